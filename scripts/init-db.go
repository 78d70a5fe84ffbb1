package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/lielsontattoo/studio-backend/internal/modules/auth"
)

// Creates the schema and seeds the defaults the storefront shipped with:
// the admin login, starter categories and products, and the welcome coupon.
func main() {
	fmt.Println("Initializing database...")

	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, relying on environment")
	}

	db, err := sql.Open("postgres", os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database:", err)
	}

	fmt.Println("Creating tables...")
	if _, err := db.Exec(schema); err != nil {
		log.Fatal("Failed to create schema:", err)
	}

	fmt.Println("Seeding defaults...")
	if err := seed(db); err != nil {
		log.Fatal("Failed to seed:", err)
	}

	fmt.Println("Database initialized successfully!")
}

const schema = `
CREATE TABLE IF NOT EXISTS studio_config (
	id              INT PRIMARY KEY CHECK (id = 1),
	logo_url        TEXT NOT NULL DEFAULT '',
	primary_color   TEXT NOT NULL DEFAULT '#0f0f0f',
	accent_color    TEXT NOT NULL DEFAULT '#dc2626',
	admin_email     TEXT NOT NULL,
	admin_pass_hash TEXT NOT NULL,
	closed_dates    TEXT[] NOT NULL DEFAULT '{}',
	delivery_fee    DOUBLE PRECISION NOT NULL DEFAULT 7,
	updated_at      TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS categories (
	id         UUID PRIMARY KEY,
	name       TEXT NOT NULL UNIQUE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS products (
	id          UUID PRIMARY KEY,
	category_id UUID NOT NULL REFERENCES categories(id),
	name        TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	price       DOUBLE PRECISION NOT NULL,
	stock       INT NOT NULL DEFAULT 0 CHECK (stock >= 0),
	image_url   TEXT NOT NULL DEFAULT '',
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS services (
	id         UUID PRIMARY KEY,
	name       TEXT NOT NULL,
	price      DOUBLE PRECISION NOT NULL,
	icon       TEXT NOT NULL DEFAULT '',
	is_active  BOOLEAN NOT NULL DEFAULT true,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS appointments (
	id               UUID PRIMARY KEY,
	service_id       TEXT NOT NULL,
	service_name     TEXT NOT NULL,
	price            DOUBLE PRECISION NOT NULL DEFAULT 0,
	customer_name    TEXT NOT NULL,
	phone            TEXT NOT NULL,
	date             TEXT NOT NULL,
	time             TEXT NOT NULL,
	status           TEXT NOT NULL DEFAULT 'PENDING',
	notes            TEXT NOT NULL DEFAULT '',
	tattoo_image_url TEXT NOT NULL DEFAULT '',
	tattoo_size      TEXT NOT NULL DEFAULT '',
	tattoo_location  TEXT NOT NULL DEFAULT '',
	created_at       TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at       TIMESTAMPTZ NOT NULL DEFAULT now()
);

-- one non-cancelled appointment per slot
CREATE UNIQUE INDEX IF NOT EXISTS appointments_slot_idx
	ON appointments (date, time) WHERE status <> 'CANCELLED';

CREATE TABLE IF NOT EXISTS orders (
	id                UUID PRIMARY KEY,
	customer_name     TEXT NOT NULL,
	phone             TEXT NOT NULL,
	delivery          BOOLEAN NOT NULL DEFAULT false,
	delivery_fee      DOUBLE PRECISION NOT NULL DEFAULT 0,
	addr_neighborhood TEXT,
	addr_street       TEXT,
	addr_number       TEXT,
	addr_reference    TEXT,
	payment_method    TEXT NOT NULL,
	change_for        DOUBLE PRECISION,
	subtotal          DOUBLE PRECISION NOT NULL,
	discount          DOUBLE PRECISION NOT NULL DEFAULT 0,
	total             DOUBLE PRECISION NOT NULL,
	coupon_code       TEXT,
	status            TEXT NOT NULL DEFAULT 'PENDING',
	created_at        TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at        TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS order_items (
	id         UUID PRIMARY KEY,
	order_id   UUID NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
	product_id UUID NOT NULL,
	name       TEXT NOT NULL,
	price      DOUBLE PRECISION NOT NULL,
	quantity   INT NOT NULL CHECK (quantity > 0),
	line_total DOUBLE PRECISION NOT NULL
);

CREATE TABLE IF NOT EXISTS coupons (
	code       TEXT PRIMARY KEY,
	percent    DOUBLE PRECISION NOT NULL,
	active     BOOLEAN NOT NULL DEFAULT true,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
`

func seed(db *sql.DB) error {
	_, err := db.Exec(`
		INSERT INTO studio_config (id, admin_email, admin_pass_hash)
		VALUES (1, 'admin@admin', $1)
		ON CONFLICT (id) DO NOTHING`, auth.LegacyHash("admin"))
	if err != nil {
		return fmt.Errorf("seed config: %w", err)
	}

	categories := map[string]uuid.UUID{
		"Piercing":  uuid.New(),
		"Aftercare": uuid.New(),
		"Merch":     uuid.New(),
	}
	for name, id := range categories {
		if _, err := db.Exec(`
			INSERT INTO categories (id, name) VALUES ($1,$2)
			ON CONFLICT (name) DO NOTHING`, id, name); err != nil {
			return fmt.Errorf("seed category %s: %w", name, err)
		}
	}

	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM products`).Scan(&count); err != nil {
		return err
	}
	if count == 0 {
		var aftercareID, piercingID uuid.UUID
		if err := db.QueryRow(`SELECT id FROM categories WHERE name='Aftercare'`).Scan(&aftercareID); err != nil {
			return err
		}
		if err := db.QueryRow(`SELECT id FROM categories WHERE name='Piercing'`).Scan(&piercingID); err != nil {
			return err
		}
		_, err = db.Exec(`
			INSERT INTO products (id, category_id, name, description, price, stock) VALUES
			($1, $2, 'Pomada Cicatrizante', 'Para melhor cicatrização da sua tattoo.', 15.00, 20),
			($3, $4, 'Piercing Básico Titânio', 'Joia de alta qualidade.', 40.00, 10)`,
			uuid.New(), aftercareID, uuid.New(), piercingID)
		if err != nil {
			return fmt.Errorf("seed products: %w", err)
		}
	}

	_, err = db.Exec(`
		INSERT INTO coupons (code, percent, active) VALUES ('BEMVINDO', 20, true)
		ON CONFLICT (code) DO NOTHING`)
	if err != nil {
		return fmt.Errorf("seed coupon: %w", err)
	}
	return nil
}
