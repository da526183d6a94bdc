package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Vedantlights/indiapropertys-sub001/internal/models"
)

type InquiryRepository struct {
	DB *sql.DB
}

func (r *InquiryRepository) CreateInquiry(ctx context.Context, inq models.Inquiry) (models.Inquiry, error) {
	query := `
		INSERT INTO inquiries
			(property_id, buyer_id, seller_id, name, email, mobile, message, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, NOW())
	`
	result, err := r.DB.ExecContext(ctx, query,
		inq.PropertyID, inq.BuyerID, inq.SellerID,
		inq.Name, inq.Email, inq.Mobile, inq.Message, inq.Status,
	)
	if err != nil {
		return models.Inquiry{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return models.Inquiry{}, err
	}
	inq.ID = int(id)
	return inq, nil
}

func (r *InquiryRepository) GetInquiryByID(ctx context.Context, id int) (models.Inquiry, error) {
	query := `
		SELECT id, property_id, buyer_id, seller_id, name, email, mobile, message, status, created_at
		FROM inquiries
		WHERE id = ?
	`
	inq, err := scanInquiry(r.DB.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return models.Inquiry{}, models.ErrInquiryNotFound
	}
	if err != nil {
		return models.Inquiry{}, err
	}
	return inq, nil
}

// ListBySeller returns the seller's inbox, newest first, joined with the
// property title and cover image for list rendering. The count query carries
// the same properties join as the page query: inquiries survive property
// deletion, and a dangling inquiry must not inflate total.
func (r *InquiryRepository) ListBySeller(ctx context.Context, sellerID int, status string, limit, offset int) ([]models.Inquiry, int, error) {
	qf := &queryFilter{}
	qf.add("i.seller_id = ?", sellerID)
	if status != "" {
		qf.add("i.status = ?", status)
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM inquiries i JOIN properties p ON p.id = i.property_id` + qf.where()
	if err := r.DB.QueryRowContext(ctx, countQuery, qf.args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT i.id, i.property_id, i.buyer_id, i.seller_id, i.name, i.email, i.mobile,
		       i.message, i.status, i.created_at, p.title, p.cover_image
		FROM inquiries i
		JOIN properties p ON p.id = i.property_id
	` + qf.where() + ` ORDER BY i.created_at DESC, i.id DESC LIMIT ? OFFSET ?`

	args := append(qf.args, limit, offset)
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var inquiries []models.Inquiry
	for rows.Next() {
		var (
			inq     models.Inquiry
			buyerID sql.NullInt64
			cover   sql.NullString
		)
		err := rows.Scan(&inq.ID, &inq.PropertyID, &buyerID, &inq.SellerID,
			&inq.Name, &inq.Email, &inq.Mobile, &inq.Message, &inq.Status,
			&inq.CreatedAt, &inq.Property.Title, &cover)
		if err != nil {
			return nil, 0, err
		}
		if buyerID.Valid {
			id := int(buyerID.Int64)
			inq.BuyerID = &id
		}
		inq.Property.CoverImage = cover.String
		inquiries = append(inquiries, inq)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("inquiry rows error: %w", err)
	}
	return inquiries, total, nil
}

func (r *InquiryRepository) UpdateStatus(ctx context.Context, id int, status string) error {
	result, err := r.DB.ExecContext(ctx,
		`UPDATE inquiries SET status = ? WHERE id = ?`, status, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return models.ErrInquiryNotFound
	}
	return nil
}

func scanInquiry(scanner interface{ Scan(dest ...any) error }) (models.Inquiry, error) {
	var (
		inq     models.Inquiry
		buyerID sql.NullInt64
	)
	err := scanner.Scan(&inq.ID, &inq.PropertyID, &buyerID, &inq.SellerID,
		&inq.Name, &inq.Email, &inq.Mobile, &inq.Message, &inq.Status, &inq.CreatedAt)
	if err != nil {
		return models.Inquiry{}, err
	}
	if buyerID.Valid {
		id := int(buyerID.Int64)
		inq.BuyerID = &id
	}
	return inq, nil
}
