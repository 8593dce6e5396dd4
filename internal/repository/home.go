package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/homequest/homequest-go/internal/model"
)

var ErrHomeNotFound = errors.New("home not found")

// HomeRepository handles listing persistence operations.
type HomeRepository struct {
	db *sql.DB
}

// NewHomeRepository creates a new HomeRepository.
func NewHomeRepository(db *sql.DB) *HomeRepository {
	return &HomeRepository{db: db}
}

const homeColumns = `id, address, city, price, land_size, number_of_bedrooms,
	number_of_bathrooms, property_type, listed_date, realtor_id, created_at, updated_at`

// Create inserts a new listing with its images and sets the generated ID.
func (r *HomeRepository) Create(ctx context.Context, home *model.Home) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `INSERT INTO homes (address, city, price, land_size, number_of_bedrooms,
		number_of_bathrooms, property_type, listed_date, realtor_id)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	result, err := tx.ExecContext(ctx, query,
		home.Address, home.City, home.Price, home.LandSize, home.NumberOfBedrooms,
		home.NumberOfBathrooms, home.PropertyType, home.ListedDate, home.RealtorID,
	)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	home.ID = id

	for _, url := range home.Images {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO home_images (home_id, url) VALUES (?, ?)`, id, url); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// GetByID retrieves a listing with all of its image URLs.
func (r *HomeRepository) GetByID(ctx context.Context, id int64) (*model.Home, error) {
	query := `SELECT ` + homeColumns + ` FROM homes WHERE id = ?`

	home := &model.Home{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&home.ID, &home.Address, &home.City, &home.Price, &home.LandSize,
		&home.NumberOfBedrooms, &home.NumberOfBathrooms, &home.PropertyType,
		&home.ListedDate, &home.RealtorID, &home.CreatedAt, &home.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrHomeNotFound
		}
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, `SELECT url FROM home_images WHERE home_id = ? ORDER BY id`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var url string
		if err := rows.Scan(&url); err != nil {
			return nil, err
		}
		home.Images = append(home.Images, url)
	}

	return home, rows.Err()
}

// List retrieves listings matching the filter, each with its first image URL.
func (r *HomeRepository) List(ctx context.Context, filter model.HomeFilter) ([]model.Home, error) {
	var conds []string
	var args []any

	if filter.City != "" {
		conds = append(conds, "city = ?")
		args = append(args, filter.City)
	}
	if filter.MinPrice != nil {
		conds = append(conds, "price >= ?")
		args = append(args, *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		conds = append(conds, "price <= ?")
		args = append(args, *filter.MaxPrice)
	}
	if filter.PropertyType != "" {
		conds = append(conds, "property_type = ?")
		args = append(args, filter.PropertyType)
	}

	query := `SELECT h.id, h.address, h.city, h.price, h.land_size, h.number_of_bedrooms,
		h.number_of_bathrooms, h.property_type, h.listed_date, h.realtor_id,
		h.created_at, h.updated_at,
		COALESCE((SELECT i.url FROM home_images i WHERE i.home_id = h.id ORDER BY i.id LIMIT 1), '')
		FROM homes h`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY h.listed_date DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var homes []model.Home
	for rows.Next() {
		var h model.Home
		var image string
		if err := rows.Scan(
			&h.ID, &h.Address, &h.City, &h.Price, &h.LandSize,
			&h.NumberOfBedrooms, &h.NumberOfBathrooms, &h.PropertyType,
			&h.ListedDate, &h.RealtorID, &h.CreatedAt, &h.UpdatedAt, &image,
		); err != nil {
			return nil, err
		}
		if image != "" {
			h.Images = []string{image}
		}
		homes = append(homes, h)
	}

	return homes, rows.Err()
}

// Update applies non-nil fields of the request to an existing listing.
func (r *HomeRepository) Update(ctx context.Context, id int64, req model.UpdateHomeRequest) error {
	var sets []string
	var args []any

	set := func(col string, v any) {
		sets = append(sets, fmt.Sprintf("%s = ?", col))
		args = append(args, v)
	}

	if req.Address != nil {
		set("address", *req.Address)
	}
	if req.City != nil {
		set("city", *req.City)
	}
	if req.Price != nil {
		set("price", *req.Price)
	}
	if req.LandSize != nil {
		set("land_size", *req.LandSize)
	}
	if req.NumberOfBedrooms != nil {
		set("number_of_bedrooms", *req.NumberOfBedrooms)
	}
	if req.NumberOfBathrooms != nil {
		set("number_of_bathrooms", *req.NumberOfBathrooms)
	}
	if req.PropertyType != nil {
		set("property_type", *req.PropertyType)
	}
	if req.ListedDate != nil {
		set("listed_date", *req.ListedDate)
	}

	if len(sets) == 0 {
		return nil
	}

	query := `UPDATE homes SET ` + strings.Join(sets, ", ") + ` WHERE id = ?`
	args = append(args, id)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrHomeNotFound
	}

	return nil
}

// Delete removes a listing and its images.
func (r *HomeRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM home_images WHERE home_id = ?`, id); err != nil {
		return err
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM homes WHERE id = ?`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrHomeNotFound
	}

	return tx.Commit()
}

// GetRealtorByHomeID resolves the realtor who owns a listing.
func (r *HomeRepository) GetRealtorByHomeID(ctx context.Context, homeID int64) (*model.Owner, error) {
	query := `SELECT u.id, u.name, u.email, u.phone
		FROM homes h JOIN users u ON u.id = h.realtor_id
		WHERE h.id = ?`

	owner := &model.Owner{}
	err := r.db.QueryRowContext(ctx, query, homeID).Scan(
		&owner.ID, &owner.Name, &owner.Email, &owner.Phone,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrHomeNotFound
		}
		return nil, err
	}

	return owner, nil
}
