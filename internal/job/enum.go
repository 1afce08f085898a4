package job

type ServiceType string

const (
	ServiceVideo       ServiceType = "Vídeo"
	ServicePhoto       ServiceType = "Fotografia"
	ServiceDesign      ServiceType = "Design"
	ServiceSites       ServiceType = "Sites"
	ServiceAuxiliarT   ServiceType = "Auxiliar T."
	ServiceFrella      ServiceType = "Frella"
	ServiceProgramacao ServiceType = "Programação"
	ServiceRedacao     ServiceType = "Redação"
	ServiceOther       ServiceType = "Outro"
)

var AllServiceTypes = []ServiceType{
	ServiceVideo,
	ServicePhoto,
	ServiceDesign,
	ServiceSites,
	ServiceAuxiliarT,
	ServiceFrella,
	ServiceProgramacao,
	ServiceRedacao,
	ServiceOther,
}

func (s ServiceType) IsValid() bool {
	for _, v := range AllServiceTypes {
		if s == v {
			return true
		}
	}
	return false
}

type Status string

const (
	StatusBriefing   Status = "Briefing"
	StatusProduction Status = "Produção"
	StatusReview     Status = "Revisão"
	StatusFinalized  Status = "Finalizado"
	StatusPaid       Status = "Pago"
)

// AllStatuses is the intended forward order of the board. Transitions are not
// enforced: the Kanban allows free reassignment in any direction.
var AllStatuses = []Status{
	StatusBriefing,
	StatusProduction,
	StatusReview,
	StatusFinalized,
	StatusPaid,
}

func (s Status) IsValid() bool {
	for _, v := range AllStatuses {
		if s == v {
			return true
		}
	}
	return false
}
