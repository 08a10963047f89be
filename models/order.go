package models

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Workflow statuses set by call-center agents. The workflow is deliberately
// permissive: any status may be written over any other via update, there is
// no enforced transition graph.
const (
	StatusPending   = "Pending"
	StatusMemo      = "Memo"
	StatusCancel    = "Cancel"
	StatusNoAnswer  = "No Answer"
	StatusHold      = "Hold"
	StatusRedx      = "Redx"
	StatusPathaow   = "Pathaow"
	StatusSteadfast = "Steadfast"
)

// Logistic statuses describe the delivery outcome, separately from the
// sales workflow status above.
const (
	LogisticRedx      = "Redx"
	LogisticSteadfast = "Steadfast"
	LogisticPathaow   = "Pathaow"
	LogisticReturned  = "Returned"
	LogisticDamage    = "Damage"
	LogisticPartial   = "Partial"
)

// MarkedPrinted and MarkedExported are the stored flag values. The printed
// flag is the string "True" so documents written by the previous system
// keep matching.
const (
	MarkedPrinted  = "True"
	MarkedExported = "Exported"
)

type OrderedProduct struct {
	SKU      string  `bson:"sku" json:"sku"`
	Quantity float64 `bson:"quantity" json:"quantity"`
	Price    float64 `bson:"price" json:"price"`
	Total    float64 `bson:"total" json:"total"`
}

type ReturnedProduct struct {
	SKU      string  `bson:"sku" json:"sku"`
	Quantity float64 `bson:"qty" json:"qty"`
}

type Order struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	InvoiceID     string             `bson:"invoiceId" json:"invoiceId"`
	Date          string             `bson:"date" json:"date"`
	PageName      string             `bson:"pageName" json:"pageName"`
	CustomerName  string             `bson:"customerName" json:"customerName"`
	PhoneNumber   string             `bson:"phoneNumber" json:"phoneNumber"`
	Address       string             `bson:"address" json:"address"`
	Note          string             `bson:"note,omitempty" json:"note,omitempty"`
	Products      []OrderedProduct   `bson:"products" json:"products"`
	DeliveryCost  float64            `bson:"deliveryCost" json:"deliveryCost"`
	Advance       float64            `bson:"advance" json:"advance"`
	Discount      float64            `bson:"discount" json:"discount"`
	GrandTotal    float64            `bson:"grandTotal" json:"grandTotal"`
	Status        string             `bson:"status" json:"status"`
	// The field name keeps the original system's spelling so both
	// implementations read the same documents.
	LogisticStatus  string            `bson:"logistictStatus,omitempty" json:"logistictStatus,omitempty"`
	ConsignmentID   string            `bson:"consignmentId,omitempty" json:"consignmentId,omitempty"`
	AssignedTo      string            `bson:"assignedTo,omitempty" json:"assignedTo,omitempty"`
	MarkAsPrinted   string            `bson:"markAsPrinted,omitempty" json:"markAsPrinted,omitempty"`
	MarkAs          string            `bson:"markAs,omitempty" json:"markAs,omitempty"`
	ReturnedProduct []ReturnedProduct `bson:"returnedProduct,omitempty" json:"returnedProduct,omitempty"`
	District        string            `bson:"district,omitempty" json:"district,omitempty"`
	Area            string            `bson:"area,omitempty" json:"area,omitempty"`
	Comment         string            `bson:"comment,omitempty" json:"comment,omitempty"`
	CreatedAt       time.Time         `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time         `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// OrderLineInput is one product line as submitted by the client. Quantity
// and price arrive as strings and are parsed strictly.
type OrderLineInput struct {
	SKU      string `json:"sku"`
	Quantity string `json:"quantity"`
	Price    string `json:"price"`
}

type OrderInput struct {
	InvoiceID    string           `json:"invoiceId"`
	Date         string           `json:"date"`
	PageName     string           `json:"pageName"`
	CustomerName string           `json:"customerName"`
	PhoneNumber  string           `json:"phoneNumber"`
	Address      string           `json:"address"`
	Note         string           `json:"note"`
	Products     []OrderLineInput `json:"products"`
	DeliveryCost string           `json:"deliveryCost"`
	Advance      string           `json:"advance"`
	Discount     string           `json:"discount"`
}

type OrderUpdateInput struct {
	OrderInput
	Status        string `json:"status"`
	ConsignmentID string `json:"consignmentId"`
	RedxDistrict  string `json:"redxDistrict"`
	RedxArea      string `json:"redxArea"`
	Comment       string `json:"comment"`
}

var (
	ErrMissingInvoiceID = errors.New("invoiceId is required")
	ErrMissingProducts  = errors.New("at least one product line is required")
)

// BuildLines recomputes every line total from the submitted quantity and
// price. Client-sent totals are never trusted.
func BuildLines(inputs []OrderLineInput) ([]OrderedProduct, error) {
	lines := make([]OrderedProduct, 0, len(inputs))
	for _, in := range inputs {
		qty, err := ParseAmount("quantity", in.Quantity)
		if err != nil {
			return nil, err
		}
		price, err := ParseAmount("price", in.Price)
		if err != nil {
			return nil, err
		}
		lines = append(lines, OrderedProduct{
			SKU:      in.SKU,
			Quantity: qty,
			Price:    price,
			Total:    Round2(qty * price),
		})
	}
	return lines, nil
}

func GrandTotal(lines []OrderedProduct, deliveryCost, advance, discount float64) float64 {
	var sum float64
	for _, line := range lines {
		sum += line.Total
	}
	return Round2(sum + deliveryCost - advance - discount)
}

// NewOrder validates a create payload and produces the stored document with
// status Pending and recomputed totals.
func NewOrder(in OrderInput, now time.Time) (*Order, error) {
	if in.InvoiceID == "" {
		return nil, ErrMissingInvoiceID
	}
	if len(in.Products) == 0 {
		return nil, ErrMissingProducts
	}

	lines, err := BuildLines(in.Products)
	if err != nil {
		return nil, err
	}
	deliveryCost, err := ParseAmount("deliveryCost", in.DeliveryCost)
	if err != nil {
		return nil, err
	}
	advance, err := ParseAmount("advance", in.Advance)
	if err != nil {
		return nil, err
	}
	discount, err := ParseAmount("discount", in.Discount)
	if err != nil {
		return nil, err
	}

	return &Order{
		InvoiceID:    in.InvoiceID,
		Date:         in.Date,
		PageName:     in.PageName,
		CustomerName: in.CustomerName,
		PhoneNumber:  in.PhoneNumber,
		Address:      in.Address,
		Note:         in.Note,
		Products:     lines,
		DeliveryCost: deliveryCost,
		Advance:      advance,
		Discount:     discount,
		GrandTotal:   GrandTotal(lines, deliveryCost, advance, discount),
		Status:       StatusPending,
		CreatedAt:    now,
	}, nil
}
