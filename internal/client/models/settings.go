package models

type SMTPConfig struct {
	Host        string `json:"host" validate:"required,hostname|ip"`
	Port        int    `json:"port" validate:"required,min=1,max=65535"`
	Username    string `json:"username,omitempty"`
	Password    string `json:"password,omitempty"`
	FromAddress string `json:"fromAddress" validate:"required,email"`
	UseTLS      bool   `json:"useTls"`
}

type SMTPTestRequest struct {
	Recipient string `json:"recipient" validate:"required,email"`
}

type AlertConfig struct {
	ID           int64    `json:"id,omitempty"`
	DocumentType string   `json:"documentType" validate:"required"`
	DaysBefore   []int    `json:"daysBefore" validate:"required,min=1,dive,gte=0,lte=365"`
	Enabled      bool     `json:"enabled"`
	Recipients   []string `json:"recipients,omitempty" validate:"dive,email"`
}
