package model

// OrderStatus moves one way, from Pending to Replied.
type OrderStatus string

const (
	OrderPending OrderStatus = "Pending"
	OrderReplied OrderStatus = "Replied"
)

// Order is a patient's medicine order.
// @Description Medicine order placed by a patient
type Order struct {
	ID               string      `json:"id" example:"3f1c2a9e-5d1b-4a52-9d1e-0c7c6f0b9a11"`
	UserID           string      `json:"userId" example:"rahim01"`
	UserName         string      `json:"userName" example:"Rahim Uddin"`
	MedName          string      `json:"medName" example:"Napa 500mg"`
	Quantity         string      `json:"quantity" example:"10"`
	Address          string      `json:"address" example:"Mirpur, Dhaka"`
	Phone            string      `json:"phone" example:"01700000000"`
	Status           OrderStatus `json:"status" example:"Pending"`
	AdminReply       string      `json:"adminReply,omitempty"`
	UserConfirmation string      `json:"userConfirmation,omitempty"`
	Timestamp        int64       `json:"timestamp" example:"1760500000000"`
}

func (o Order) IsPending() bool {
	return o.Status == OrderPending
}
