package client

import "time"

// Client is a billing counterpart. Deleting a client does not cascade to jobs;
// a job whose clientId no longer resolves is shown as an unknown client.
type Client struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Company      string    `json:"company,omitempty"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone,omitempty"`
	CPF          string    `json:"cpf,omitempty"`
	Observations string    `json:"observations,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

const UnknownClientName = "Cliente Desconhecido"
