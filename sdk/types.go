package sdk

import "time"

// Brand is a product brand with an uploaded logo.
type Brand struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	LogoURL   string    `json:"logoUrl,omitempty"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Model is a product model belonging to a brand.
type Model struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	BrandID   string    `json:"brandId"`
	BrandName string    `json:"brandName,omitempty"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

// ProductType is a category/subcategory node used to classify products.
type ProductType struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	ParentID string `json:"parentId,omitempty"`
	IsActive bool   `json:"isActive"`
}

// Product is a sellable item.
type Product struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	BrandID       string    `json:"brandId"`
	ModelID       string    `json:"modelId,omitempty"`
	ProductTypeID string    `json:"productTypeId"`
	Price         float64   `json:"price"`
	ImageURLs     []string  `json:"imageUrls,omitempty"`
	IsActive      bool      `json:"isActive"`
	CreatedAt     time.Time `json:"createdAt"`
}

// Order statuses as exposed by the backend.
const (
	OrderPending   = "pending"
	OrderConfirmed = "confirmed"
	OrderShipped   = "shipped"
	OrderDelivered = "delivered"
	OrderCancelled = "cancelled"
)

type Order struct {
	ID           string    `json:"id"`
	Number       string    `json:"number"`
	CustomerID   string    `json:"customerId"`
	CustomerName string    `json:"customerName,omitempty"`
	Status       string    `json:"status"`
	Total        float64   `json:"total"`
	ItemCount    int       `json:"itemCount"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Dealer is a dealer registration awaiting or holding approval.
type Dealer struct {
	ID           string    `json:"id"`
	ShopName     string    `json:"shopName"`
	OwnerName    string    `json:"ownerName"`
	Phone        string    `json:"phone"`
	Email        string    `json:"email,omitempty"`
	AgreementURL string    `json:"agreementUrl,omitempty"`
	IsApproved   bool      `json:"isApproved"`
	CreatedAt    time.Time `json:"createdAt"`
}

type Customer struct {
	ID        string    `json:"id"`
	FullName  string    `json:"fullName"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	IsBlocked bool      `json:"isBlocked"`
	CreatedAt time.Time `json:"createdAt"`
}

// Page is a static content page (about, terms, privacy...).
type Page struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	Body      string    `json:"body"`
	IsActive  bool      `json:"isActive"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type FAQ struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Position int    `json:"position"`
	IsActive bool   `json:"isActive"`
}

// Pixel is a third-party tracking pixel id (facebook, tiktok...).
type Pixel struct {
	ID       string `json:"id"`
	Provider string `json:"provider"`
	PixelID  string `json:"pixelId"`
	IsActive bool   `json:"isActive"`
}

// VisitUsLocation is a physical shop location shown on the storefront.
type VisitUsLocation struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Address  string `json:"address"`
	MapURL   string `json:"mapUrl,omitempty"`
	Phone    string `json:"phone,omitempty"`
	IsActive bool   `json:"isActive"`
}

// Notification is an admin-facing event notification.
type Notification struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body,omitempty"`
	Kind      string    `json:"kind,omitempty"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}

// AdminProfile is the admin's own account record as returned by /profile.
type AdminProfile struct {
	ID             string `json:"id"`
	FullName       string `json:"fullName"`
	Email          string `json:"email"`
	ProfilePicture string `json:"profilePicture,omitempty"`
	IsSuper        bool   `json:"isSuper"`
	IsAdmin        bool   `json:"isAdmin"`
	IsAccess       bool   `json:"isAccess"`
}

// LoginResult is the body returned by POST /login.
type LoginResult struct {
	Token string `json:"token"`
}

// Option is a value/label pair used to populate select controls.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}
