package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Vedantlights/indiapropertys-sub001/internal/models"
)

type PropertyRepository struct {
	DB *sql.DB
}

// propertySelect is the one row shape every property read uses: the property
// columns, the seller's name/phone, the ordered image gallery and amenity ids
// as comma-joined lists, and whether the viewing user has favorited the row.
const propertySelect = `
	SELECT p.id, p.user_id, p.title, p.description, p.status, p.property_type,
	       p.city, p.location, p.latitude, p.longitude,
	       p.bedrooms, p.bathrooms, p.balconies, p.area, p.carpet_area,
	       p.price, p.price_negotiable, p.maintenance_charges, p.deposit_amount,
	       p.cover_image, p.is_active, p.admin_status, p.views_count,
	       p.created_at, p.updated_at,
	       u.name, u.phone,
	       COALESCE(GROUP_CONCAT(DISTINCT pi.image_url ORDER BY pi.image_order SEPARATOR ','), ''),
	       COALESCE(GROUP_CONCAT(DISTINCT pa.amenity_id SEPARATOR ','), ''),
	       CASE WHEN f.property_id IS NOT NULL THEN 1 ELSE 0 END AS is_favorite
	FROM properties p
	JOIN users u ON u.id = p.user_id
	LEFT JOIN property_images pi ON pi.property_id = p.id
	LEFT JOIN property_amenities pa ON pa.property_id = p.id
	LEFT JOIN favorites f ON f.property_id = p.id AND f.user_id = ?
`

const propertyGroupOrder = ` GROUP BY p.id ORDER BY p.created_at DESC, p.id DESC`

// buildSearchFilter lowers the normalized predicate set into SQL conditions.
// Buyer-facing reads always carry the visibility gate.
func buildSearchFilter(f models.SearchFilters) *queryFilter {
	qf := &queryFilter{}
	qf.add("p.is_active = 1")
	qf.add("p.admin_status = ?", models.AdminStatusApproved)

	if f.Status != "" {
		qf.add("p.status = ?", f.Status)
	}
	if f.PropertyType != "" {
		qf.add("p.property_type = ?", f.PropertyType)
	}
	if f.Location != "" {
		like := "%" + f.Location + "%"
		qf.add("(p.city LIKE ? OR p.location LIKE ?)", like, like)
	}
	if f.Search != "" {
		like := "%" + f.Search + "%"
		qf.add("(p.title LIKE ? OR p.location LIKE ? OR p.description LIKE ?)", like, like, like)
	}
	if f.MinPrice != nil {
		qf.add("p.price >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		qf.add("p.price <= ?", *f.MaxPrice)
	}
	if f.BedroomsMin != nil {
		// bedrooms is stored as free text; CAST gives the leading number
		// for values like "5+" and 0 for "Studio".
		qf.add("CAST(p.bedrooms AS UNSIGNED) >= ?", *f.BedroomsMin)
	} else if f.BedroomsExact != "" {
		qf.add("REPLACE(p.bedrooms, ' BHK', '') = ?", f.BedroomsExact)
	}
	if f.MinArea != nil {
		qf.add("p.area >= ?", *f.MinArea)
	}
	if f.MaxArea != nil {
		qf.add("p.area <= ?", *f.MaxArea)
	}
	return qf
}

// SearchProperties runs the buyer search. The COUNT query reuses the exact
// filter set of the page query so total always reflects the full filtered
// set.
func (r *PropertyRepository) SearchProperties(ctx context.Context, f models.SearchFilters, viewerID, limit, offset int) ([]models.Property, int, error) {
	qf := buildSearchFilter(f)

	var total int
	countQuery := `SELECT COUNT(*) FROM properties p` + qf.where()
	if err := r.DB.QueryRowContext(ctx, countQuery, qf.args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := propertySelect + qf.where() + propertyGroupOrder + ` LIMIT ? OFFSET ?`
	args := append([]any{viewerID}, qf.args...)
	args = append(args, limit, offset)

	properties, err := r.queryProperties(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	return properties, total, nil
}

// ListFavorites returns the viewer's favorited properties with the same
// gating and ordering as the buyer search.
func (r *PropertyRepository) ListFavorites(ctx context.Context, userID, limit, offset int) ([]models.Property, int, error) {
	where := ` WHERE p.is_active = 1 AND p.admin_status = ? AND p.id IN (SELECT property_id FROM favorites WHERE user_id = ?)`

	var total int
	countQuery := `SELECT COUNT(*) FROM properties p` + where
	if err := r.DB.QueryRowContext(ctx, countQuery, models.AdminStatusApproved, userID).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := propertySelect + where + propertyGroupOrder + ` LIMIT ? OFFSET ?`
	properties, err := r.queryProperties(ctx, query, userID, models.AdminStatusApproved, userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return properties, total, nil
}

// ListByUser returns a seller's own listings regardless of moderation state.
func (r *PropertyRepository) ListByUser(ctx context.Context, userID, limit, offset int) ([]models.Property, int, error) {
	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM properties p WHERE p.user_id = ?`, userID).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := propertySelect + ` WHERE p.user_id = ?` + propertyGroupOrder + ` LIMIT ? OFFSET ?`
	properties, err := r.queryProperties(ctx, query, userID, userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return properties, total, nil
}

// ListByAdminStatus backs the moderation queue.
func (r *PropertyRepository) ListByAdminStatus(ctx context.Context, status string, limit, offset int) ([]models.Property, int, error) {
	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM properties p WHERE p.admin_status = ?`, status).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := propertySelect + ` WHERE p.admin_status = ?` + propertyGroupOrder + ` LIMIT ? OFFSET ?`
	properties, err := r.queryProperties(ctx, query, 0, status, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return properties, total, nil
}

// GetPropertyByID fetches one property. With publicOnly the visibility gate
// applies, so hidden or unmoderated rows read as not found.
func (r *PropertyRepository) GetPropertyByID(ctx context.Context, id, viewerID int, publicOnly bool) (models.Property, error) {
	query := propertySelect + ` WHERE p.id = ?`
	args := []any{viewerID, id}
	if publicOnly {
		query += ` AND p.is_active = 1 AND p.admin_status = ?`
		args = append(args, models.AdminStatusApproved)
	}
	query += ` GROUP BY p.id`

	p, err := scanProperty(r.DB.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return models.Property{}, models.ErrPropertyNotFound
	}
	if err != nil {
		return models.Property{}, err
	}
	return p, nil
}

// GetPropertiesByIDs hydrates a set of ids through the visibility gate. The
// caller is responsible for ordering.
func (r *PropertyRepository) GetPropertiesByIDs(ctx context.Context, ids []int, viewerID int) ([]models.Property, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
	query := propertySelect + fmt.Sprintf(` WHERE p.is_active = 1 AND p.admin_status = ? AND p.id IN (%s)`, placeholders) + ` GROUP BY p.id`

	args := []any{viewerID, models.AdminStatusApproved}
	for _, id := range ids {
		args = append(args, id)
	}
	return r.queryProperties(ctx, query, args...)
}

// GetVisibleOwner resolves the current owner of a buyer-visible property.
func (r *PropertyRepository) GetVisibleOwner(ctx context.Context, propertyID int) (int, error) {
	var ownerID int
	err := r.DB.QueryRowContext(ctx,
		`SELECT user_id FROM properties WHERE id = ? AND is_active = 1 AND admin_status = ?`,
		propertyID, models.AdminStatusApproved,
	).Scan(&ownerID)
	if err == sql.ErrNoRows {
		return 0, models.ErrPropertyNotFound
	}
	if err != nil {
		return 0, err
	}
	return ownerID, nil
}

// IncrementViews bumps the view counter by one. Every details fetch counts;
// the single UPDATE statement is the only concurrency control needed.
func (r *PropertyRepository) IncrementViews(ctx context.Context, id int) error {
	_, err := r.DB.ExecContext(ctx, `UPDATE properties SET views_count = views_count + 1 WHERE id = ?`, id)
	return err
}

// CountActiveByUser counts a seller's non-archived listings for the
// subscription ceiling check.
func (r *PropertyRepository) CountActiveByUser(ctx context.Context, userID int) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM properties WHERE user_id = ? AND is_active = 1`, userID).Scan(&count)
	return count, err
}

// CreateProperty inserts the property together with its images and amenities
// in one transaction. Any failure rolls the whole write back.
func (r *PropertyRepository) CreateProperty(ctx context.Context, p models.Property) (models.Property, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return models.Property{}, err
	}

	query := `
		INSERT INTO properties
			(user_id, title, description, status, property_type, city, location,
			 latitude, longitude, bedrooms, bathrooms, balconies, area, carpet_area,
			 price, price_negotiable, maintenance_charges, deposit_amount,
			 cover_image, is_active, admin_status, views_count, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, 1, ?, 0, NOW(), NOW())
	`
	result, err := tx.ExecContext(ctx, query,
		p.UserID, p.Title, p.Description, p.Status, p.PropertyType, p.City, p.Location,
		p.Latitude, p.Longitude, p.Bedrooms, p.Bathrooms, p.Balconies, p.Area, p.CarpetArea,
		p.Price, p.PriceNegotiable, p.MaintenanceCharges, p.DepositAmount,
		p.CoverImage, models.AdminStatusPending,
	)
	if err != nil {
		tx.Rollback()
		return models.Property{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		tx.Rollback()
		return models.Property{}, err
	}
	p.ID = int(id)

	if err := insertPropertyRelations(ctx, tx, p.ID, p.Images, p.Amenities); err != nil {
		tx.Rollback()
		return models.Property{}, err
	}

	if err := tx.Commit(); err != nil {
		return models.Property{}, err
	}

	p.IsActive = true
	p.AdminStatus = models.AdminStatusPending
	p.CreatedAt = time.Now()
	return p, nil
}

// UpdateProperty rewrites an owned listing. Moderation state drops back to
// pending so edits go through review again.
func (r *PropertyRepository) UpdateProperty(ctx context.Context, p models.Property) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	query := `
		UPDATE properties
		SET title = ?, description = ?, status = ?, property_type = ?, city = ?, location = ?,
		    latitude = ?, longitude = ?, bedrooms = ?, bathrooms = ?, balconies = ?,
		    area = ?, carpet_area = ?, price = ?, price_negotiable = ?,
		    maintenance_charges = ?, deposit_amount = ?, cover_image = ?,
		    admin_status = ?, updated_at = NOW()
		WHERE id = ? AND user_id = ?
	`
	result, err := tx.ExecContext(ctx, query,
		p.Title, p.Description, p.Status, p.PropertyType, p.City, p.Location,
		p.Latitude, p.Longitude, p.Bedrooms, p.Bathrooms, p.Balconies,
		p.Area, p.CarpetArea, p.Price, p.PriceNegotiable,
		p.MaintenanceCharges, p.DepositAmount, p.CoverImage,
		models.AdminStatusPending, p.ID, p.UserID,
	)
	if err != nil {
		tx.Rollback()
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		tx.Rollback()
		return err
	}
	if affected == 0 {
		tx.Rollback()
		return models.ErrPropertyNotFound
	}

	if p.Images != nil || p.Amenities != nil {
		if _, err := tx.ExecContext(ctx, `DELETE FROM property_images WHERE property_id = ?`, p.ID); err != nil {
			tx.Rollback()
			return err
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM property_amenities WHERE property_id = ?`, p.ID); err != nil {
			tx.Rollback()
			return err
		}
		if err := insertPropertyRelations(ctx, tx, p.ID, p.Images, p.Amenities); err != nil {
			tx.Rollback()
			return err
		}
	}

	return tx.Commit()
}

// DeleteProperty removes an owned listing with its images and amenities.
// Favorites and inquiries are weak references and stay behind.
func (r *PropertyRepository) DeleteProperty(ctx context.Context, id, userID int) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM property_images WHERE property_id = ?`, id); err != nil {
		tx.Rollback()
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM property_amenities WHERE property_id = ?`, id); err != nil {
		tx.Rollback()
		return err
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM properties WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		tx.Rollback()
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		tx.Rollback()
		return err
	}
	if affected == 0 {
		tx.Rollback()
		return models.ErrPropertyNotFound
	}
	return tx.Commit()
}

// SetAdminStatus flips the moderation state of one listing.
func (r *PropertyRepository) SetAdminStatus(ctx context.Context, id int, status string) error {
	result, err := r.DB.ExecContext(ctx,
		`UPDATE properties SET admin_status = ?, updated_at = NOW() WHERE id = ?`, status, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return models.ErrPropertyNotFound
	}
	return nil
}

func insertPropertyRelations(ctx context.Context, tx *sql.Tx, propertyID int, images, amenities []string) error {
	for i, img := range images {
		if strings.TrimSpace(img) == "" {
			continue
		}
		_, err := tx.ExecContext(ctx,
			`INSERT INTO property_images (property_id, image_url, image_order) VALUES (?, ?, ?)`,
			propertyID, img, i)
		if err != nil {
			return err
		}
	}
	for _, amenity := range amenities {
		if strings.TrimSpace(amenity) == "" {
			continue
		}
		_, err := tx.ExecContext(ctx,
			`INSERT INTO property_amenities (property_id, amenity_id) VALUES (?, ?)`,
			propertyID, amenity)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *PropertyRepository) queryProperties(ctx context.Context, query string, args ...any) ([]models.Property, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var properties []models.Property
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, err
		}
		properties = append(properties, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("property rows error: %w", err)
	}
	return properties, nil
}

// scanProperty reads one row of propertySelect, coercing the scalar-ish
// columns ("0"/"1" flags, nullable counters) into typed values.
func scanProperty(scanner interface{ Scan(dest ...any) error }) (models.Property, error) {
	var (
		p                  models.Property
		latitude           sql.NullFloat64
		longitude          sql.NullFloat64
		bedrooms           sql.NullString
		bathrooms          sql.NullString
		balconies          sql.NullString
		carpetArea         sql.NullFloat64
		negotiable         sql.NullInt64
		maintenanceCharges sql.NullFloat64
		depositAmount      sql.NullFloat64
		coverImage         sql.NullString
		isActive           sql.NullInt64
		viewsCount         sql.NullInt64
		updatedAt          sql.NullTime
		imagesConcat       string
		amenitiesConcat    string
		isFavorite         int
	)

	err := scanner.Scan(
		&p.ID, &p.UserID, &p.Title, &p.Description, &p.Status, &p.PropertyType,
		&p.City, &p.Location, &latitude, &longitude,
		&bedrooms, &bathrooms, &balconies, &p.Area, &carpetArea,
		&p.Price, &negotiable, &maintenanceCharges, &depositAmount,
		&coverImage, &isActive, &p.AdminStatus, &viewsCount,
		&p.CreatedAt, &updatedAt,
		&p.Seller.Name, &p.Seller.Phone,
		&imagesConcat, &amenitiesConcat, &isFavorite,
	)
	if err != nil {
		return models.Property{}, err
	}

	if latitude.Valid {
		p.Latitude = &latitude.Float64
	}
	if longitude.Valid {
		p.Longitude = &longitude.Float64
	}
	p.Bedrooms = bedrooms.String
	p.Bathrooms = bathrooms.String
	p.Balconies = balconies.String
	if carpetArea.Valid {
		p.CarpetArea = &carpetArea.Float64
	}
	p.PriceNegotiable = negotiable.Int64 != 0
	if maintenanceCharges.Valid {
		p.MaintenanceCharges = &maintenanceCharges.Float64
	}
	if depositAmount.Valid {
		p.DepositAmount = &depositAmount.Float64
	}
	p.CoverImage = coverImage.String
	p.IsActive = isActive.Int64 != 0
	p.ViewsCount = int(viewsCount.Int64)
	if updatedAt.Valid {
		t := updatedAt.Time
		p.UpdatedAt = &t
	}
	p.Seller.ID = p.UserID
	p.IsFavorite = isFavorite != 0

	if imagesConcat != "" {
		p.Images = strings.Split(imagesConcat, ",")
	}
	if amenitiesConcat != "" {
		p.Amenities = strings.Split(amenitiesConcat, ",")
	}
	return p, nil
}
