package eosdb

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Store обертка для работы с SQLite копией справочника EOS.
// SQLite используется как операционное хранилище (импорт, инспекция
// через обычные SQL инструменты); на время работы сервиса справочник
// целиком поднимается в память через LoadTable.
type Store struct {
	conn *sql.DB
}

// StoreConfig конфигурация пула подключений
type StoreConfig struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// NewStore создает новое подключение к базе справочника EOS
func NewStore(dbPath string) (*Store, error) {
	return NewStoreWithConfig(dbPath, StoreConfig{})
}

// NewStoreWithConfig создает новое подключение к базе справочника EOS с конфигурацией
func NewStoreWithConfig(dbPath string, config StoreConfig) (*Store, error) {
	conn, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open eos database: %w", err)
	}

	// Настройка connection pooling
	if config.MaxOpenConns > 0 {
		conn.SetMaxOpenConns(config.MaxOpenConns)
	} else {
		conn.SetMaxOpenConns(25)
	}

	if config.MaxIdleConns > 0 {
		conn.SetMaxIdleConns(config.MaxIdleConns)
	} else {
		conn.SetMaxIdleConns(5)
	}

	if config.ConnMaxLifetime > 0 {
		conn.SetConnMaxLifetime(config.ConnMaxLifetime)
	} else {
		conn.SetConnMaxLifetime(5 * time.Minute)
	}

	// Проверяем подключение
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping eos database: %w", err)
	}

	if _, err := conn.Exec("PRAGMA foreign_keys = ON"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	store := &Store{conn: conn}

	// Инициализируем схему
	if err := initSchema(conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to initialize eos schema: %w", err)
	}

	return store, nil
}

// initSchema создает схему справочника EOS, если она еще не создана
func initSchema(conn *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS eos_products (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		product_key TEXT NOT NULL UNIQUE
	);

	CREATE TABLE IF NOT EXISTS eos_versions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		product_id INTEGER NOT NULL,
		version_key TEXT NOT NULL,
		eos_date TEXT,
		source TEXT NOT NULL DEFAULT '',
		notes TEXT NOT NULL DEFAULT '',
		FOREIGN KEY (product_id) REFERENCES eos_products(id) ON DELETE CASCADE,
		UNIQUE (product_id, version_key)
	);

	CREATE INDEX IF NOT EXISTS idx_eos_versions_product_id ON eos_versions(product_id);
	`

	if _, err := conn.Exec(schema); err != nil {
		return fmt.Errorf("failed to create eos tables: %w", err)
	}

	return nil
}

// Close закрывает подключение к базе справочника EOS
func (s *Store) Close() error {
	return s.conn.Close()
}

// ImportTable загружает справочник в SQLite, замещая прежнее содержимое.
// Импорт выполняется в одной транзакции: либо весь справочник, либо ничего.
func (s *Store) ImportTable(t *Table) error {
	tx, err := s.conn.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin import transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM eos_products"); err != nil {
		return fmt.Errorf("failed to clear eos products: %w", err)
	}

	insertProduct, err := tx.Prepare("INSERT INTO eos_products (product_key) VALUES (?)")
	if err != nil {
		return fmt.Errorf("failed to prepare product insert: %w", err)
	}
	defer insertProduct.Close()

	insertVersion, err := tx.Prepare(`
		INSERT INTO eos_versions (product_id, version_key, eos_date, source, notes)
		VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare version insert: %w", err)
	}
	defer insertVersion.Close()

	for _, productKey := range t.ProductKeys() {
		res, err := insertProduct.Exec(productKey)
		if err != nil {
			return fmt.Errorf("failed to insert product %q: %w", productKey, err)
		}
		productID, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to get product id for %q: %w", productKey, err)
		}

		for _, versionKey := range t.VersionKeys(productKey) {
			record, _ := t.Record(productKey, versionKey)
			if _, err := insertVersion.Exec(productID, versionKey, record.EOSDate, record.Source, record.Notes); err != nil {
				return fmt.Errorf("failed to insert version %q/%q: %w", productKey, versionKey, err)
			}
		}
	}

	return tx.Commit()
}

// LoadTable поднимает справочник из SQLite в память
func (s *Store) LoadTable() (*Table, error) {
	rows, err := s.conn.Query(`
		SELECT p.product_key, v.version_key, v.eos_date, v.source, v.notes
		FROM eos_products p
		JOIN eos_versions v ON v.product_id = p.id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query eos records: %w", err)
	}
	defer rows.Close()

	data := make(map[string]map[string]Record)
	for rows.Next() {
		var productKey, versionKey, source, notes string
		var eosDate sql.NullString
		if err := rows.Scan(&productKey, &versionKey, &eosDate, &source, &notes); err != nil {
			return nil, fmt.Errorf("failed to scan eos record: %w", err)
		}

		record := Record{Source: source, Notes: notes}
		if eosDate.Valid {
			record.EOSDate = &eosDate.String
		}

		if data[productKey] == nil {
			data[productKey] = make(map[string]Record)
		}
		data[productKey][versionKey] = record
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate eos records: %w", err)
	}

	return NewTable(data), nil
}

// Count возвращает количество продуктов и версий в хранилище
func (s *Store) Count() (products, versions int, err error) {
	if err = s.conn.QueryRow("SELECT COUNT(*) FROM eos_products").Scan(&products); err != nil {
		return 0, 0, fmt.Errorf("failed to count products: %w", err)
	}
	if err = s.conn.QueryRow("SELECT COUNT(*) FROM eos_versions").Scan(&versions); err != nil {
		return 0, 0, fmt.Errorf("failed to count versions: %w", err)
	}
	return products, versions, nil
}
