package entities

import "time"

// OrderSession wraps one draft with its session identity.
//
// Lifecycle: created at session start with NewOrderDraft defaults, discarded
// on submit success or explicit reset. Only the session store writes it.
type OrderSession struct {
	ID        string     `json:"id"`
	Draft     OrderDraft `json:"draft"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// PaymentChoice is the billing preference captured in step 4.
type PaymentChoice struct {
	Method  PaymentMethod `json:"method"`
	DueDate string        `json:"due_date"`
}

// OrderSubmission is the full snapshot posted to the intake provider on
// submit. It is assembled from the draft at submission time, never stored.
type OrderSubmission struct {
	OrderID       string              `json:"order_id"`
	Customer      CustomerData        `json:"customer"`
	Address       Address             `json:"address"`
	Plan          Plan                `json:"plan"`
	Apps          []AppOption         `json:"apps"`
	Services      []AdditionalService `json:"services"`
	Payment       PaymentChoice       `json:"payment"`
	Scheduling    Scheduling          `json:"scheduling"`
	MonthlyTotal  float64             `json:"monthly_total"`
	ActivationTax float64             `json:"activation_tax"`
}
