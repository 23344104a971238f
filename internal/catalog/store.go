package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/vinyloveschody/storefront-api/internal/models"
)

// Store runs the read-only catalog queries against the content store.
// The storefront never mutates catalog documents; editing happens in the
// CMS that feeds this database.
type Store struct {
	DB *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{DB: db}
}

const productColumns = `
	id, kind, slug, title, category_slug,
	unit_price_net, currency, image, link, decor_slug, tags, params,
	created_at, updated_at`

// Categories lists the storefront navigation entries with their product
// counts. Categories without products still show up, with a zero count.
func (s *Store) Categories(ctx context.Context) ([]models.Category, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT c.slug, c.title, COUNT(p.id)
		FROM categories c
		LEFT JOIN products p ON p.category_slug = c.slug
		GROUP BY c.slug, c.title
		ORDER BY c.title`)
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.Slug, &c.Title, &c.ProductCount); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// ProductsByCategory lists every product in a category. Zero rows is an
// empty state, not an error; the page renders an empty-state message.
func (s *Store) ProductsByCategory(ctx context.Context, categorySlug string) ([]models.Product, error) {
	query := "SELECT" + productColumns + `
		FROM products
		WHERE category_slug = ?
		ORDER BY title`

	rows, err := s.DB.QueryContext(ctx, query, categorySlug)
	if err != nil {
		return nil, fmt.Errorf("query products by category: %w", err)
	}
	defer rows.Close()

	return scanProducts(rows)
}

// ProductBySlug fetches a single product. Returns (nil, nil) when the
// slug matches nothing.
func (s *Store) ProductBySlug(ctx context.Context, slug string) (*models.Product, error) {
	query := "SELECT" + productColumns + " FROM products WHERE slug = ?"

	row := s.DB.QueryRowContext(ctx, query, slug)
	p, err := scanProduct(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query product by slug: %w", err)
	}
	return &p, nil
}

// ProductsByDecor fetches all products sharing a decor/pattern reference,
// excluding the product the customer is already looking at.
func (s *Store) ProductsByDecor(ctx context.Context, decorSlug, excludeSlug string) ([]models.Product, error) {
	query := "SELECT" + productColumns + `
		FROM products
		WHERE decor_slug = ? AND slug <> ?
		ORDER BY kind, title`

	rows, err := s.DB.QueryContext(ctx, query, decorSlug, excludeSlug)
	if err != nil {
		return nil, fmt.Errorf("query products by decor: %w", err)
	}
	defer rows.Close()

	return scanProducts(rows)
}

// CrossSell resolves the cross-sell sections for a product detail page:
// siblings sharing the product's decor, partitioned by kind into labeled
// sections. Products without a decor reference have no cross-sell.
func (s *Store) CrossSell(ctx context.Context, p *models.Product) ([]models.CrossSellSection, error) {
	if p.DecorSlug == nil || *p.DecorSlug == "" {
		return nil, nil
	}

	siblings, err := s.ProductsByDecor(ctx, *p.DecorSlug, p.Slug)
	if err != nil {
		return nil, err
	}
	return PartitionCrossSell(p.Kind, siblings), nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (models.Product, error) {
	var (
		p         models.Product
		decorSlug sql.NullString
		tagsRaw   []byte
		paramsRaw []byte
	)

	err := row.Scan(
		&p.ID, &p.Kind, &p.Slug, &p.Title, &p.CategorySlug,
		&p.UnitPriceNet, &p.Currency, &p.Image, &p.Link,
		&decorSlug, &tagsRaw, &paramsRaw,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return models.Product{}, err
	}

	if decorSlug.Valid {
		p.DecorSlug = &decorSlug.String
	}
	if len(tagsRaw) > 0 {
		if err := json.Unmarshal(tagsRaw, &p.Tags); err != nil {
			return models.Product{}, fmt.Errorf("decode tags for %q: %w", p.Slug, err)
		}
	}
	if err := decodeParams(&p, paramsRaw); err != nil {
		return models.Product{}, err
	}
	return p, nil
}

func scanProducts(rows *sql.Rows) ([]models.Product, error) {
	var products []models.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return products, nil
}

// decodeParams turns the loosely-typed params JSON into the per-kind
// struct, so everything downstream of the store works with exhaustively
// typed documents.
func decodeParams(p *models.Product, raw []byte) error {
	if len(raw) == 0 {
		raw = []byte("{}")
	}

	var err error
	switch p.Kind {
	case models.DocFloor:
		p.Floor = &models.FloorParams{}
		err = json.Unmarshal(raw, p.Floor)
	case models.DocStair:
		p.Stair = &models.StairParams{}
		err = json.Unmarshal(raw, p.Stair)
	case models.DocSkirting:
		p.Skirting = &models.SkirtingParams{}
		err = json.Unmarshal(raw, p.Skirting)
	case models.DocTransitionProfile:
		p.TransitionProfile = &models.TransitionProfileParams{}
		err = json.Unmarshal(raw, p.TransitionProfile)
	case models.DocWallTermination:
		p.WallTermination = &models.WallTerminationParams{}
		err = json.Unmarshal(raw, p.WallTermination)
	case models.DocAccessory:
		p.Accessory = &models.AccessoryParams{}
		err = json.Unmarshal(raw, p.Accessory)
	default:
		return fmt.Errorf("unknown document kind %q for product %q", p.Kind, p.Slug)
	}
	if err != nil {
		return fmt.Errorf("decode %s params for %q: %w", p.Kind, p.Slug, err)
	}
	return nil
}
