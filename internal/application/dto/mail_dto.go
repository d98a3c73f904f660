package dto

import (
	"fmt"
	"regexp"
)

// receivingTimeRe formato estricto HH:MM:SS de 24 horas.
var receivingTimeRe = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d:[0-5]\d$`)

// ValidReceivingTime valida el formato HH:MM:SS.
func ValidReceivingTime(s string) error {
	if !receivingTimeRe.MatchString(s) {
		return fmt.Errorf("receiving_time debe tener formato HH:MM:SS, llegó '%s'", s)
	}
	return nil
}

// CreateMailRequest alta de una notificación programada.
type CreateMailRequest struct {
	ReceiverName  string `json:"receiver_name" validate:"required,min=1,max=200"`
	ReceiverEmail string `json:"receiver_email" validate:"required,email"`
	ReceivingTime string `json:"receiving_time" validate:"required"`
	CompanyID     int64  `json:"company_id" validate:"required"`
}

// UpdateMailRequest actualización parcial de una notificación.
type UpdateMailRequest struct {
	ReceiverName  *string `json:"receiver_name" validate:"omitempty,min=1,max=200"`
	ReceiverEmail *string `json:"receiver_email" validate:"omitempty,email"`
	ReceivingTime *string `json:"receiving_time"`
}

// MailResponse salida de una notificación programada.
type MailResponse struct {
	ID            int64  `json:"id"`
	ReceiverName  string `json:"receiver_name"`
	ReceiverEmail string `json:"receiver_email"`
	ReceivingTime string `json:"receiving_time"`
	CompanyID     int64  `json:"company_id"`
}

// MailListResponse lista paginada de notificaciones.
type MailListResponse struct {
	Items []MailResponse `json:"items"`
	Limit int            `json:"limit"`
	Skip  int            `json:"skip"`
}
