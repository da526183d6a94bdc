package models

import "time"

const (
	InquiryStatusNew       = "new"
	InquiryStatusContacted = "contacted"
	InquiryStatusClosed    = "closed"
)

type Inquiry struct {
	ID         int       `json:"id"`
	PropertyID int       `json:"property_id"`
	BuyerID    *int      `json:"buyer_id,omitempty"`
	SellerID   int       `json:"seller_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Mobile     string    `json:"mobile"`
	Message    string    `json:"message"`
	Status     string    `json:"status"`
	Property   struct {
		Title      string `json:"title"`
		CoverImage string `json:"cover_image,omitempty"`
	} `json:"property"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateInquiryRequest struct {
	PropertyID int    `json:"property_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Mobile     string `json:"mobile"`
	Message    string `json:"message"`
}

type UpdateInquiryStatusRequest struct {
	Status string `json:"status"`
}

func IsValidInquiryStatus(status string) bool {
	switch status {
	case InquiryStatusNew, InquiryStatusContacted, InquiryStatusClosed:
		return true
	}
	return false
}

type InquiryListResponse struct {
	Inquiries  []Inquiry  `json:"inquiries"`
	Pagination Pagination `json:"pagination"`
}
