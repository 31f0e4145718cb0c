package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-estate/internal/logger"
	"github.com/MKhiriev/go-estate/models"
	"github.com/jackc/pgerrcode"
)

// listingRepository is the PostgreSQL-backed implementation of
// [ListingRepository]. The image_urls column is stored as JSONB and
// (un)marshalled with encoding/json on the way in and out, since the
// database/sql pgx driver has no native []string scanning.
type listingRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewListingRepository constructs a [ListingRepository] backed by the
// provided database connection and logger.
func NewListingRepository(db *DB, logger *logger.Logger) ListingRepository {
	logger.Debug().Msg("creating listing repository")
	return &listingRepository{
		db:     db,
		logger: logger,
	}
}

// CreateListing persists a new listing and returns the stored record with
// server-assigned fields.
//
// Error handling:
//   - PostgreSQL foreign_key_violation on owner_id → [ErrUserNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *listingRepository) CreateListing(ctx context.Context, listing models.Listing) (models.Listing, error) {
	log := logger.FromContext(ctx)

	images, err := json.Marshal(listing.ImageURLs)
	if err != nil {
		return models.Listing{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, createListing,
		listing.Name, listing.Description, listing.Address, listing.Type,
		listing.Parking, listing.Furnished, listing.Offer,
		listing.Bedrooms, listing.Bathrooms,
		listing.RegularPrice, listing.DiscountPrice,
		images, listing.OwnerID,
	)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*listingRepository.CreateListing").Msg("error: insert failed")

		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation:
			return models.Listing{}, ErrUserNotFound
		default:
			return models.Listing{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	saved, err := scanListing(row)
	if err != nil {
		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return models.Listing{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "*listingRepository.CreateListing").Msg("error: scanning error")
		return models.Listing{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return saved, nil
}

// GetListing retrieves a listing by primary key.
// Returns [ErrListingNotFound] if no row matches.
func (r *listingRepository) GetListing(ctx context.Context, listingID int64) (models.Listing, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, getListing, listingID)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*listingRepository.GetListing").Msg("error: query failed")
		return models.Listing{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	listing, err := scanListing(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Listing{}, ErrListingNotFound
		}
		log.Err(err).Str("func", "*listingRepository.GetListing").Msg("error: scanning error")
		return models.Listing{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return listing, nil
}

// UpdateListing replaces the mutable columns of the row identified by
// listing.ID and returns the stored record.
// Returns [ErrListingNotFound] when the row does not exist.
func (r *listingRepository) UpdateListing(ctx context.Context, listing models.Listing) (models.Listing, error) {
	log := logger.FromContext(ctx)

	images, err := json.Marshal(listing.ImageURLs)
	if err != nil {
		return models.Listing{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, updateListing,
		listing.ID,
		listing.Name, listing.Description, listing.Address, listing.Type,
		listing.Parking, listing.Furnished, listing.Offer,
		listing.Bedrooms, listing.Bathrooms,
		listing.RegularPrice, listing.DiscountPrice,
		images,
	)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*listingRepository.UpdateListing").Msg("error: update failed")
		return models.Listing{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	saved, err := scanListing(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Listing{}, ErrListingNotFound
		}
		log.Err(err).Str("func", "*listingRepository.UpdateListing").Msg("error: scanning error")
		return models.Listing{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return saved, nil
}

// DeleteListing removes a listing row. Returns [ErrListingNotFound] when
// the row did not exist.
func (r *listingRepository) DeleteListing(ctx context.Context, listingID int64) error {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, deleteListing, listingID)
	if err != nil {
		log.Err(err).Str("func", "*listingRepository.DeleteListing").Msg("error: delete failed")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrListingNotFound
	}

	return nil
}

// ListByOwner returns every listing owned by the given user, newest first.
// An owner with no listings yields an empty, non-nil slice.
func (r *listingRepository) ListByOwner(ctx context.Context, ownerID int64) ([]models.Listing, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listListingsByOwner, ownerID)
	if err != nil {
		log.Err(err).Str("func", "*listingRepository.ListByOwner").Msg("error: query failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer func() { _ = rows.Close() }()

	return collectListings(rows)
}

// DeleteByOwner removes all listings owned by the given user. Removing
// zero rows is not an error: an account without listings is valid.
func (r *listingRepository) DeleteByOwner(ctx context.Context, ownerID int64) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, deleteListingsByOwner, ownerID); err != nil {
		log.Err(err).Str("func", "*listingRepository.DeleteByOwner").Msg("error: delete failed")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// Search runs the dynamic listing query. The WHERE clause is assembled
// with squirrel from whichever filters the caller set:
//
//   - SearchTerm matches name OR description, case-insensitive (ILIKE);
//   - Type narrows to "sale" or "rent";
//   - Offer, Furnished, Parking filter only when non-nil — a nil pointer
//     means "either value", matching the tri-state query parameters.
//
// Results are ordered newest first and paginated with Limit/Offset.
func (r *listingRepository) Search(ctx context.Context, query models.SearchQuery) ([]models.Listing, error) {
	log := logger.FromContext(ctx)

	builder := sq.Select(listingColumns...).
		From("listings").
		PlaceholderFormat(sq.Dollar)

	if query.SearchTerm != "" {
		pattern := "%" + query.SearchTerm + "%"
		builder = builder.Where(sq.Or{
			sq.ILike{"name": pattern},
			sq.ILike{"description": pattern},
		})
	}
	if query.Type == models.ListingTypeSale || query.Type == models.ListingTypeRent {
		builder = builder.Where(sq.Eq{"type": query.Type})
	}
	if query.Offer != nil {
		builder = builder.Where(sq.Eq{"offer": *query.Offer})
	}
	if query.Furnished != nil {
		builder = builder.Where(sq.Eq{"furnished": *query.Furnished})
	}
	if query.Parking != nil {
		builder = builder.Where(sq.Eq{"parking": *query.Parking})
	}

	limit := query.Limit
	if limit == 0 {
		limit = models.DefaultSearchLimit
	}
	builder = builder.OrderBy("created_at DESC").Limit(limit).Offset(query.Offset)

	sqlQuery, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", "*listingRepository.Search").Msg("error: building query failed")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		log.Err(err).Str("func", "*listingRepository.Search").Msg("error: query failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer func() { _ = rows.Close() }()

	return collectListings(rows)
}

func collectListings(rows *sql.Rows) ([]models.Listing, error) {
	listings := make([]models.Listing, 0)

	for rows.Next() {
		var (
			l      models.Listing
			images []byte
		)
		err := rows.Scan(
			&l.ID, &l.Name, &l.Description, &l.Address, &l.Type,
			&l.Parking, &l.Furnished, &l.Offer,
			&l.Bedrooms, &l.Bathrooms,
			&l.RegularPrice, &l.DiscountPrice,
			&images, &l.OwnerID, &l.CreatedAt, &l.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		if err := json.Unmarshal(images, &l.ImageURLs); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		listings = append(listings, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return listings, nil
}

func scanListing(row *sql.Row) (models.Listing, error) {
	var (
		l      models.Listing
		images []byte
	)
	err := row.Scan(
		&l.ID, &l.Name, &l.Description, &l.Address, &l.Type,
		&l.Parking, &l.Furnished, &l.Offer,
		&l.Bedrooms, &l.Bathrooms,
		&l.RegularPrice, &l.DiscountPrice,
		&images, &l.OwnerID, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		return models.Listing{}, err
	}
	if err := json.Unmarshal(images, &l.ImageURLs); err != nil {
		return models.Listing{}, err
	}
	return l, nil
}
