package model

// MedicinePrice is an admin-maintained catalog entry.
type MedicinePrice struct {
	ID      string `json:"id" example:"b5c1d7e2-8d44-4c1f-a2a8-7f3f7b2c1e90"`
	Name    string `json:"name" binding:"required" example:"Napa"`
	Generic string `json:"generic" binding:"required" example:"Paracetamol"`
	Company string `json:"company" binding:"required" example:"Beximco"`
	Price   string `json:"price" binding:"required" example:"1.20"`
}

// AlternativeBrand is one item of an alternative-brand lookup.
type AlternativeBrand struct {
	Name    string `json:"name"`
	Company string `json:"company"`
	Price   string `json:"price"`
	Generic string `json:"generic"`
}
