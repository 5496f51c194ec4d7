package models

type Contract struct {
	ID                  uint             `json:"id"`
	FullName            string           `json:"fullName"`
	Document            string           `json:"document"`
	Phone               string           `json:"phone"`
	Email               string           `json:"email"`
	StartDate           string           `json:"startDate"`
	EndDate             string           `json:"endDate"`
	TotalBaseRentAgreed float64          `json:"totalBaseRentAgreed"`
	TotalUvtQtyAgreed   float64          `json:"totalUvtQtyAgreed"`
	Active              bool             `json:"active"`
	PersonID            uint             `json:"personId,omitempty"`
	Address             string           `json:"address,omitempty"`
	PremisesLeased      []PremisesLeased `json:"premisesLeased,omitempty"`
}

type PremisesLeased struct {
	ID                uint    `json:"id"`
	EstablishmentID   uint    `json:"establishmentId"`
	EstablishmentName string  `json:"establishmentName"`
	Description       string  `json:"description"`
	AreaM2            float64 `json:"areaM2"`
	RentValueBase     float64 `json:"rentValueBase"`
	Address           string  `json:"address"`
	PlazaName         string  `json:"plazaName"`
}

// ContractObligation es la cuota mensual calculada por el backend.
// Status llega en español: "Pendiente", "Aprobada", "Mora", "PreJuridico".
type ContractObligation struct {
	ID              uint    `json:"id"`
	ContractID      uint    `json:"contractId"`
	Active          bool    `json:"active"`
	BaseAmount      float64 `json:"baseAmount"`
	LateAmount      float64 `json:"lateAmount"`
	TotalAmount     float64 `json:"totalAmount"`
	VatAmount       float64 `json:"vatAmount"`
	DueDate         string  `json:"dueDate"`
	PaymentDate     *string `json:"paymentDate"`
	Status          string  `json:"status"`
	DaysLate        int     `json:"daysLate"`
	Locked          bool    `json:"locked"`
	Month           int     `json:"month"`
	Year            int     `json:"year"`
	UvtQtyApplied   float64 `json:"uvtQtyApplied"`
	UvtValueApplied float64 `json:"uvtValueApplied"`
	VatRateApplied  float64 `json:"vatRateApplied"`
}

type ContractMetrics struct {
	Active   int `json:"activos"`
	Inactive int `json:"inactivos"`
	Total    int `json:"total"`
}

// Checkout es la respuesta del backend al iniciar el pago de una
// obligación; la pasarela la resuelve el servidor, aquí solo viaja la URL.
type Checkout struct {
	ObligationID uint   `json:"obligationId"`
	CheckoutURL  string `json:"checkoutUrl"`
	Reference    string `json:"reference"`
}
