package database

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/ministore/storefront/models"
)

// Store is the MongoDB adapter for the persistence ports. Documents are
// keyed by the application-assigned string id, not by ObjectID, so records
// round-trip unchanged between store drivers. Money fields are stored as
// decimal strings.
type Store struct {
	products *mongo.Collection
	vouchers *mongo.Collection
	orders   *mongo.Collection
}

func NewStore(client *mongo.Client, databaseName string) *Store {
	return &Store{
		products: OpenCollection(client, databaseName, "products"),
		vouchers: OpenCollection(client, databaseName, "vouchers"),
		orders:   OpenCollection(client, databaseName, "orders"),
	}
}

type productDoc struct {
	ID              string   `bson:"id"`
	Name            string   `bson:"name"`
	Description     string   `bson:"description"`
	FullDescription string   `bson:"fullDescription"`
	Price           string   `bson:"price"`
	SellPrice       string   `bson:"sellPrice"`
	Image           string   `bson:"image"`
	Images          []string `bson:"images"`
	Slug            string   `bson:"slug"`
	Features        []string `bson:"features"`
}

type voucherDoc struct {
	ID          string `bson:"id"`
	Code        string `bson:"code"`
	Type        string `bson:"type"`
	Discount    string `bson:"discount"`
	Description string `bson:"description"`
	Active      bool   `bson:"active"`
	UsageLimit  int    `bson:"usageLimit"`
	UsageCount  int    `bson:"usageCount"`
}

type orderDoc struct {
	OrderID       string `bson:"orderId"`
	OrderDate     string `bson:"orderDate"`
	Name          string `bson:"name"`
	Email         string `bson:"email"`
	Phone         string `bson:"phone"`
	Address       string `bson:"address"`
	ProductID     string `bson:"productId"`
	ProductName   string `bson:"productName"`
	OriginalPrice string `bson:"originalPrice"`
	Discount      string `bson:"discount"`
	DiscountType  string `bson:"discountType"`
	VoucherCode   string `bson:"voucherCode"`
	FinalPrice    string `bson:"finalPrice"`
}

func (s *Store) ListProducts(ctx context.Context) ([]models.Product, error) {
	cursor, err := s.products.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find products: %w", err)
	}
	defer cursor.Close(ctx)

	out := make([]models.Product, 0)
	for cursor.Next(ctx) {
		var doc productDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode product: %w", err)
		}
		out = append(out, productFromDoc(doc))
	}
	return out, cursor.Err()
}

func (s *Store) CreateProduct(ctx context.Context, p models.Product) error {
	_, err := s.products.InsertOne(ctx, productToDoc(p))
	return err
}

func (s *Store) UpdateProduct(ctx context.Context, p models.Product) error {
	_, err := s.products.ReplaceOne(ctx, bson.M{"id": p.ID}, productToDoc(p))
	return err
}

func (s *Store) DeleteProduct(ctx context.Context, id string) error {
	_, err := s.products.DeleteOne(ctx, bson.M{"id": id})
	return err
}

func (s *Store) ListVouchers(ctx context.Context) ([]models.Voucher, error) {
	cursor, err := s.vouchers.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find vouchers: %w", err)
	}
	defer cursor.Close(ctx)

	out := make([]models.Voucher, 0)
	for cursor.Next(ctx) {
		var doc voucherDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode voucher: %w", err)
		}
		out = append(out, voucherFromDoc(doc))
	}
	return out, cursor.Err()
}

func (s *Store) CreateVoucher(ctx context.Context, v models.Voucher) error {
	_, err := s.vouchers.InsertOne(ctx, voucherToDoc(v))
	return err
}

func (s *Store) UpdateVoucher(ctx context.Context, v models.Voucher) error {
	_, err := s.vouchers.ReplaceOne(ctx, bson.M{"id": v.ID}, voucherToDoc(v))
	return err
}

func (s *Store) DeleteVoucher(ctx context.Context, id string) error {
	_, err := s.vouchers.DeleteOne(ctx, bson.M{"id": id})
	return err
}

func (s *Store) AppendOrder(ctx context.Context, o models.Order) error {
	_, err := s.orders.InsertOne(ctx, orderDoc{
		OrderID:       o.OrderID,
		OrderDate:     o.OrderDate,
		Name:          o.Name,
		Email:         o.Email,
		Phone:         o.Phone,
		Address:       o.Address,
		ProductID:     o.ProductID,
		ProductName:   o.ProductName,
		OriginalPrice: o.OriginalPrice.String(),
		Discount:      o.Discount.String(),
		DiscountType:  string(o.DiscountType),
		VoucherCode:   o.VoucherCode,
		FinalPrice:    o.FinalPrice.String(),
	})
	return err
}

func (s *Store) ListOrders(ctx context.Context) ([]models.Order, error) {
	cursor, err := s.orders.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find orders: %w", err)
	}
	defer cursor.Close(ctx)

	out := make([]models.Order, 0)
	for cursor.Next(ctx) {
		var doc orderDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode order: %w", err)
		}
		out = append(out, models.Order{
			OrderID:       doc.OrderID,
			OrderDate:     doc.OrderDate,
			Name:          doc.Name,
			Email:         doc.Email,
			Phone:         doc.Phone,
			Address:       doc.Address,
			ProductID:     doc.ProductID,
			ProductName:   doc.ProductName,
			OriginalPrice: parseDecimal(doc.OriginalPrice),
			Discount:      parseDecimal(doc.Discount),
			DiscountType:  models.DiscountType(doc.DiscountType),
			VoucherCode:   doc.VoucherCode,
			FinalPrice:    parseDecimal(doc.FinalPrice),
		})
	}
	return out, cursor.Err()
}

func productToDoc(p models.Product) productDoc {
	return productDoc{
		ID:              p.ID,
		Name:            p.Name,
		Description:     p.Description,
		FullDescription: p.FullDescription,
		Price:           p.Price.String(),
		SellPrice:       p.SellPrice.String(),
		Image:           p.Image,
		Images:          p.Images,
		Slug:            p.Slug,
		Features:        p.Features,
	}
}

func productFromDoc(doc productDoc) models.Product {
	return models.Product{
		ID:              doc.ID,
		Name:            doc.Name,
		Description:     doc.Description,
		FullDescription: doc.FullDescription,
		Price:           parseDecimal(doc.Price),
		SellPrice:       parseDecimal(doc.SellPrice),
		Image:           doc.Image,
		Images:          doc.Images,
		Slug:            doc.Slug,
		Features:        doc.Features,
	}
}

func voucherToDoc(v models.Voucher) voucherDoc {
	return voucherDoc{
		ID:          v.ID,
		Code:        v.Code,
		Type:        string(v.Type),
		Discount:    v.Discount.String(),
		Description: v.Description,
		Active:      v.Active,
		UsageLimit:  v.UsageLimit,
		UsageCount:  v.UsageCount,
	}
}

func voucherFromDoc(doc voucherDoc) models.Voucher {
	return models.Voucher{
		ID:          doc.ID,
		Code:        doc.Code,
		Type:        models.DiscountType(doc.Type),
		Discount:    parseDecimal(doc.Discount),
		Description: doc.Description,
		Active:      doc.Active,
		UsageLimit:  doc.UsageLimit,
		UsageCount:  doc.UsageCount,
	}
}

func parseDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
