package repository

import "database/sql"

// Migrate creates the schema if it does not exist. The unique index on
// users.email is what makes concurrent signups for the same address
// resolve to exactly one success.
func Migrate(db *sql.DB) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			phone VARCHAR(50) NOT NULL,
			email VARCHAR(255) NOT NULL UNIQUE,
			password_hash VARCHAR(255) NOT NULL,
			role ENUM('BUYER', 'REALTOR', 'ADMIN') NOT NULL,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS homes (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			address VARCHAR(255) NOT NULL,
			city VARCHAR(100) NOT NULL,
			price DOUBLE NOT NULL,
			land_size DOUBLE NOT NULL,
			number_of_bedrooms INT NOT NULL,
			number_of_bathrooms DOUBLE NOT NULL,
			property_type ENUM('RESIDENTIAL', 'CONDO') NOT NULL,
			listed_date DATETIME NOT NULL,
			realtor_id BIGINT NOT NULL,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
			FOREIGN KEY (realtor_id) REFERENCES users(id),
			INDEX idx_homes_city (city),
			INDEX idx_homes_price (price)
		)`,
		`CREATE TABLE IF NOT EXISTS home_images (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			home_id BIGINT NOT NULL,
			url VARCHAR(2048) NOT NULL,
			FOREIGN KEY (home_id) REFERENCES homes(id)
		)`,
		`CREATE TABLE IF NOT EXISTS messages (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			message TEXT NOT NULL,
			home_id BIGINT NOT NULL,
			realtor_id BIGINT NOT NULL,
			buyer_id BIGINT NOT NULL,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (home_id) REFERENCES homes(id),
			FOREIGN KEY (realtor_id) REFERENCES users(id),
			FOREIGN KEY (buyer_id) REFERENCES users(id)
		)`,
	}

	for _, q := range queries {
		if _, err := db.Exec(q); err != nil {
			return err
		}
	}
	return nil
}
