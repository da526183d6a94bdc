package services

import (
	"context"
	"strings"

	"github.com/Vedantlights/indiapropertys-sub001/internal/models"
	"github.com/Vedantlights/indiapropertys-sub001/internal/repositories"
)

type InquiryService struct {
	InquiryRepo  *repositories.InquiryRepository
	PropertyRepo *repositories.PropertyRepository
	UserRepo     *repositories.UserRepository
	Resolver     ImageURLResolver
}

// CreateInquiry validates the target property is visible, resolves the
// current owner as the seller, back-fills contact fields from an
// authenticated buyer profile and always creates the inquiry as "new".
// buyerID is 0 for anonymous submissions.
func (s *InquiryService) CreateInquiry(ctx context.Context, req models.CreateInquiryRequest, buyerID int) (models.Inquiry, error) {
	sellerID, err := s.PropertyRepo.GetVisibleOwner(ctx, req.PropertyID)
	if err != nil {
		return models.Inquiry{}, err
	}

	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	mobile := strings.TrimSpace(req.Mobile)

	if buyerID > 0 && (name == "" || email == "" || mobile == "") {
		buyer, err := s.UserRepo.GetUserByID(ctx, buyerID)
		if err != nil && err != models.ErrUserNotFound {
			return models.Inquiry{}, err
		}
		if err == nil {
			if name == "" {
				name = buyer.Name
			}
			if email == "" {
				email = buyer.Email
			}
			if mobile == "" {
				mobile = buyer.Phone
			}
		}
	}

	fields := map[string]string{}
	if name == "" {
		fields["name"] = "name is required"
	}
	if email == "" {
		fields["email"] = "email is required"
	}
	if mobile == "" {
		fields["mobile"] = "mobile is required"
	}
	if len(fields) > 0 {
		return models.Inquiry{}, models.NewValidationError(fields)
	}

	inq := models.Inquiry{
		PropertyID: req.PropertyID,
		SellerID:   sellerID,
		Name:       name,
		Email:      email,
		Mobile:     mobile,
		Message:    strings.TrimSpace(req.Message),
		Status:     models.InquiryStatusNew,
	}
	if buyerID > 0 {
		inq.BuyerID = &buyerID
	}

	return s.InquiryRepo.CreateInquiry(ctx, inq)
}

// ListBySeller is the seller's inquiry inbox.
func (s *InquiryService) ListBySeller(ctx context.Context, sellerID int, status string, page, limit int) (models.InquiryListResponse, error) {
	page, limit = models.ClampPage(page, limit)
	inquiries, total, err := s.InquiryRepo.ListBySeller(ctx, sellerID, status, limit, models.Offset(page, limit))
	if err != nil {
		return models.InquiryListResponse{}, err
	}

	for i := range inquiries {
		inquiries[i].Property.CoverImage = s.Resolver.Resolve(inquiries[i].Property.CoverImage)
	}

	return models.InquiryListResponse{
		Inquiries:  inquiries,
		Pagination: models.NewPagination(page, limit, total),
	}, nil
}

// UpdateStatus moves an inquiry between new/contacted/closed. Only the
// owning seller may change it; transition order is not enforced.
func (s *InquiryService) UpdateStatus(ctx context.Context, inquiryID, sellerID int, status string) (models.Inquiry, error) {
	if !models.IsValidInquiryStatus(status) {
		return models.Inquiry{}, models.NewValidationError(map[string]string{
			"status": "must be new, contacted or closed",
		})
	}

	inq, err := s.InquiryRepo.GetInquiryByID(ctx, inquiryID)
	if err != nil {
		return models.Inquiry{}, err
	}
	if inq.SellerID != sellerID {
		return models.Inquiry{}, models.ErrForbidden
	}

	if err := s.InquiryRepo.UpdateStatus(ctx, inquiryID, status); err != nil {
		return models.Inquiry{}, err
	}
	inq.Status = status
	return inq, nil
}
