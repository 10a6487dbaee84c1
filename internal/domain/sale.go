package domain

import "time"

// Status possíveis de um carro no estoque
const (
	CarStatusAvailable = "available"
	CarStatusSold      = "sold"
)

// Car representa um carro cadastrado no sistema
type Car struct {
	ID        string    `json:"id"`
	Maker     string    `json:"maker"`
	Model     string    `json:"model"`
	Year      int       `json:"year"`
	Color     string    `json:"color"`
	CostPrice float64   `json:"cost_price"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Buyer representa um comprador
type Buyer struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     *string   `json:"phone"`
	Address   *string   `json:"address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Sale representa uma venda concluída. ProfitLoss é calculado no momento da
// escrita (SalePrice - PurchaseCost) e consumido como está pela agregação.
type Sale struct {
	ID           string    `json:"id"`
	CarID        string    `json:"car_id"`
	BuyerID      string    `json:"buyer_id"`
	SalePrice    float64   `json:"sale_price"`
	PurchaseCost float64   `json:"purchase_cost"`
	ProfitLoss   float64   `json:"profit_loss"`
	SaleDate     time.Time `json:"sale_date"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// UpdateSaleRequest contém os campos mutáveis de uma venda
type UpdateSaleRequest struct {
	ID        string     `json:"id"`
	SalePrice *float64   `json:"sale_price"`
	SaleDate  *time.Time `json:"sale_date"`
}
