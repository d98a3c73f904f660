package entity

// Mail es una notificación programada. ReceivingTime es hora del día en formato
// HH:MM:SS, hora local del servidor. El dispatcher compara contra "ahora"
// truncado al minuto; una fila con segundos distintos de cero nunca dispara
// (semántica heredada, pendiente de decisión de producto).
type Mail struct {
	ID            int64
	ReceiverName  string
	ReceiverEmail string
	ReceivingTime string // "HH:MM:SS"
	CompanyID     int64
}
