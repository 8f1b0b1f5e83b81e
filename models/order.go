package models

// CartLine groups bracelet contents by filename. Derived, never stored.
type CartLine struct {
	Entry     CatalogEntry `json:"entry"`
	Count     int          `json:"count"`
	LineTotal int64        `json:"lineTotal"`
}

// QuoteResponse is the priced view of a builder session's cart.
// All amounts are in fils.
type QuoteResponse struct {
	Lines       []CartLine `json:"lines"`
	Subtotal    int64      `json:"subtotal"`
	DeliveryFee int64      `json:"deliveryFee"`
	Total       int64      `json:"total"`
}

// CheckoutRequest carries the customer fields required before an order may be
// submitted. Every field must be non-empty.
type CheckoutRequest struct {
	CustomerName string `json:"customerName"`
	PhoneNumber  string `json:"phoneNumber"`
	PickupTime   string `json:"pickupTime"`
	MeetupPlace  string `json:"meetupPlace"`
	DeliveryDate string `json:"deliveryDate"`
}

// OrderCharm is one positioned charm inside an order snapshot.
type OrderCharm struct {
	Position int    `json:"position"`
	Filename string `json:"charmName"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
}

// Order is the ephemeral submission record handed to the order-recording and
// notification collaborators. Never mutated after creation.
type Order struct {
	CustomerName string       `json:"customerName"`
	PhoneNumber  string       `json:"phoneNumber"`
	PickupTime   string       `json:"pickupTime"`
	MeetupPlace  string       `json:"meetupPlace"`
	DeliveryDate string       `json:"deliveryDate"`
	BraceletSize int          `json:"braceletSize"`
	Charms       []OrderCharm `json:"charms"`
	Subtotal     int64        `json:"subtotal"`
	DeliveryFee  int64        `json:"deliveryFee"`
	Total        int64        `json:"total"`
	Timestamp    string       `json:"timestamp"`
}

// OrderRecord is one order row read back out of the spreadsheet for the
// admin listing. Charms stays in its rendered cell form; amounts are parsed
// back into fils.
type OrderRecord struct {
	CustomerName string `json:"customerName"`
	PhoneNumber  string `json:"phoneNumber"`
	PickupTime   string `json:"pickupTime"`
	MeetupPlace  string `json:"meetupPlace"`
	DeliveryDate string `json:"deliveryDate"`
	BraceletSize int    `json:"braceletSize"`
	Charms       string `json:"charms"`
	Subtotal     int64  `json:"subtotal"`
	DeliveryFee  int64  `json:"deliveryFee"`
	Total        int64  `json:"total"`
	Timestamp    string `json:"timestamp"`
}

// OrderCharmInput is one positioned charm in a stateless order submission.
type OrderCharmInput struct {
	Position int    `json:"position"`
	Filename string `json:"charmName"`
}

// OrderSubmission is the request body for the stateless order endpoint:
// customer fields plus a flattened bracelet snapshot. Prices are recomputed
// server-side from the filenames.
type OrderSubmission struct {
	CheckoutRequest
	BraceletSize int               `json:"braceletSize"`
	Charms       []OrderCharmInput `json:"charms"`
}
