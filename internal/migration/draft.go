package migration

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/pedrolmns/big-lambda/internal/draft"
)

type rawDraft struct {
	draft.DraftNote
}

func migrateDraft(raw rawDraft) draft.DraftNote {
	d := raw.DraftNote

	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	if d.Type == "" {
		d.Type = draft.TypeScript
	}
	if d.ScriptLines == nil {
		d.ScriptLines = []draft.ScriptLine{}
		// Flat content from before scripts existed becomes a single line.
		if d.Content != "" {
			d.ScriptLines = []draft.ScriptLine{{
				ID:          uuid.NewString(),
				Scene:       "1",
				Description: d.Content,
			}}
		}
	}
	if d.Attachments == nil {
		d.Attachments = []draft.Attachment{}
	}
	return d
}

// Draft migrates a single raw draft record.
func Draft(data json.RawMessage) (draft.DraftNote, error) {
	var raw rawDraft
	if err := json.Unmarshal(data, &raw); err != nil {
		return draft.DraftNote{}, err
	}
	return migrateDraft(raw), nil
}

// Drafts migrates a whole persisted draft-notes blob.
func Drafts(data []byte) ([]draft.DraftNote, error) {
	var raws []rawDraft
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, err
	}
	drafts := make([]draft.DraftNote, 0, len(raws))
	for _, raw := range raws {
		drafts = append(drafts, migrateDraft(raw))
	}
	return drafts, nil
}
