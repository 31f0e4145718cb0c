package store

const (
	userColumns = "id, username, email, password_hash, avatar, created_at, updated_at"

	createUser = `INSERT INTO users (username, email, password_hash, avatar)
    VALUES ($1, $2, $3, $4)
    RETURNING ` + userColumns + `;`

	findUserByIdentifier = `SELECT ` + userColumns + `
    FROM users
    WHERE username = $1 OR email = $1;`

	findUserByEmail = `SELECT ` + userColumns + `
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT ` + userColumns + `
    FROM users
    WHERE id = $1;`

	updateUser = `UPDATE users
    SET username = $2, email = $3, password_hash = $4, avatar = $5, updated_at = NOW()
    WHERE id = $1
    RETURNING ` + userColumns + `;`

	deleteUser = `DELETE FROM users WHERE id = $1;`

	listingColumnsSQL = `id, name, description, address, type, parking, furnished, offer,
    bedrooms, bathrooms, regular_price, discount_price, image_urls, owner_id, created_at, updated_at`

	createListing = `INSERT INTO listings (
      name, description, address, type, parking, furnished, offer,
      bedrooms, bathrooms, regular_price, discount_price, image_urls, owner_id
    ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
    RETURNING ` + listingColumnsSQL + `;`

	getListing = `SELECT ` + listingColumnsSQL + `
    FROM listings
    WHERE id = $1;`

	updateListing = `UPDATE listings
    SET name = $2, description = $3, address = $4, type = $5, parking = $6,
        furnished = $7, offer = $8, bedrooms = $9, bathrooms = $10,
        regular_price = $11, discount_price = $12, image_urls = $13, updated_at = NOW()
    WHERE id = $1
    RETURNING ` + listingColumnsSQL + `;`

	deleteListing = `DELETE FROM listings WHERE id = $1;`

	listListingsByOwner = `SELECT ` + listingColumnsSQL + `
    FROM listings
    WHERE owner_id = $1
    ORDER BY created_at DESC;`

	deleteListingsByOwner = `DELETE FROM listings WHERE owner_id = $1;`
)

// listingColumns is the column list used by the squirrel-built search query.
// Must stay in sync with listingColumnsSQL above.
var listingColumns = []string{
	"id", "name", "description", "address", "type", "parking", "furnished", "offer",
	"bedrooms", "bathrooms", "regular_price", "discount_price", "image_urls",
	"owner_id", "created_at", "updated_at",
}
