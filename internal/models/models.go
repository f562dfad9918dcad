package models

// Column names follow the legacy store layout so existing rows stay
// readable. All identities are integers, including the ones the legacy
// schema kept as strings in places.

type User struct {
	CustomerID int    `gorm:"column:customer_sk;primaryKey;autoIncrement" json:"customerId"`
	UserID     string `gorm:"column:user_id;not null"                     json:"userID"`
	UserPass   string `gorm:"column:user_pass;not null"                   json:"userPass"`
}

func (User) TableName() string { return "user" }

type Customer struct {
	CustomerID   int    `gorm:"column:customer_sk;primaryKey;autoIncrement:false" json:"customerId"`
	FirstName    string `gorm:"column:first_name"    json:"firstName"`
	LastName     string `gorm:"column:last_name"     json:"lastName"`
	EmailAddress string `gorm:"column:email_address" json:"emailAddress"`
	PhoneNumber  string `gorm:"column:phone_number"  json:"phoneNumber"`
}

func (Customer) TableName() string { return "customer" }

type Product struct {
	SKU            int     `gorm:"column:sku;primaryKey;autoIncrement:false" json:"sku"`
	ProductName    string  `gorm:"column:product_name;not null"              json:"productName"`
	Price          float64 `gorm:"column:price"                              json:"price"`
	ProductImageID int     `gorm:"column:img_id"                             json:"productImageId"`
	Color          string  `gorm:"column:color"                              json:"color"`
	Size           string  `gorm:"column:size"                               json:"size"`
	Quantity       int     `gorm:"column:quantity"                           json:"quantity"`
}

func (Product) TableName() string { return "product" }

type Order struct {
	OrderSK     int    `gorm:"column:order_sk;primaryKey;autoIncrement" json:"orderSk"`
	SKU         int    `gorm:"column:sku"          json:"sku"`
	Status      string `gorm:"column:status"       json:"status"`
	ShippingID  int    `gorm:"column:shipping_sk"  json:"shippingId"`
	CustomerID  int    `gorm:"column:customer_sk"  json:"customerId"`
	OrderNumber string `gorm:"column:order_number" json:"orderNumber"`
}

func (Order) TableName() string { return "order" }

type Shipping struct {
	ShippingID       int    `gorm:"column:shipping_sk;primaryKey;autoIncrement" json:"shippingId"`
	AddressLine1     string `gorm:"column:address_line_1"     json:"addressLine1"`
	AddressLine2     string `gorm:"column:address_line_2"     json:"addressLine2"`
	AddressLine3     string `gorm:"column:address_line_3"     json:"addressLine3"`
	ZipCode          string `gorm:"column:zip_code"           json:"zipCode"`
	ZipCodeExtension string `gorm:"column:zip_code_extension" json:"zipCodeExtension"`
	City             string `gorm:"column:city"               json:"city"`
	StateAbbr        string `gorm:"column:state_abbr"         json:"stateAbbr"`
	CustomerID       int    `gorm:"column:customer_sk;index"  json:"customerId"`
}

func (Shipping) TableName() string { return "shipping" }

// Payment does not map the legacy cvv column: card verification codes
// are accepted on requests but never persisted.
type Payment struct {
	PaymentID  int    `gorm:"column:payment_sk;primaryKey;autoIncrement" json:"paymentId"`
	CustomerID int    `gorm:"column:customer_sk"      json:"customerId"`
	CardNumber string `gorm:"column:card_number"      json:"cardNumber"`
	Expiration string `gorm:"column:expiration_mm_yy" json:"expiration"`
}

func (Payment) TableName() string { return "payment" }
