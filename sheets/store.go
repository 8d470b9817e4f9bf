package sheets

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/ministore/storefront/models"
)

// Store adapts the gateway to the persistence ports. Reads recover from an
// unreachable or malformed backend by returning an empty list; write errors
// are returned as-is and the caller decides whether to surface them.
type Store struct {
	gw       *Gateway
	log      *zap.Logger
	products string
	vouchers string
	orders   string
}

func NewStore(gw *Gateway, log *zap.Logger, productsSheet, vouchersSheet, ordersSheet string) *Store {
	return &Store{
		gw:       gw,
		log:      log,
		products: productsSheet,
		vouchers: vouchersSheet,
		orders:   ordersSheet,
	}
}

func (s *Store) ListProducts(ctx context.Context) ([]models.Product, error) {
	rows, err := s.gw.Read(ctx, s.products)
	if err != nil {
		s.log.Warn("product sheet unavailable", zap.Error(err))
		return []models.Product{}, nil
	}
	out := make([]models.Product, 0, len(rows))
	for _, row := range rows {
		out = append(out, productFromRow(row))
	}
	return out, nil
}

func (s *Store) CreateProduct(ctx context.Context, p models.Product) error {
	return s.gw.Write(ctx, s.products, productFields(p))
}

func (s *Store) UpdateProduct(ctx context.Context, p models.Product) error {
	return s.gw.Update(ctx, s.products, productFields(p))
}

func (s *Store) DeleteProduct(ctx context.Context, id string) error {
	return s.gw.Delete(ctx, s.products, id)
}

func (s *Store) ListVouchers(ctx context.Context) ([]models.Voucher, error) {
	rows, err := s.gw.Read(ctx, s.vouchers)
	if err != nil {
		s.log.Warn("voucher sheet unavailable", zap.Error(err))
		return []models.Voucher{}, nil
	}
	out := make([]models.Voucher, 0, len(rows))
	for _, row := range rows {
		out = append(out, voucherFromRow(row))
	}
	return out, nil
}

func (s *Store) CreateVoucher(ctx context.Context, v models.Voucher) error {
	return s.gw.Write(ctx, s.vouchers, voucherFields(v))
}

func (s *Store) UpdateVoucher(ctx context.Context, v models.Voucher) error {
	return s.gw.Update(ctx, s.vouchers, voucherFields(v))
}

func (s *Store) DeleteVoucher(ctx context.Context, id string) error {
	return s.gw.Delete(ctx, s.vouchers, id)
}

func (s *Store) AppendOrder(ctx context.Context, o models.Order) error {
	return s.gw.Write(ctx, s.orders, orderFields(o))
}

func (s *Store) ListOrders(ctx context.Context) ([]models.Order, error) {
	rows, err := s.gw.Read(ctx, s.orders)
	if err != nil {
		s.log.Warn("order sheet unavailable", zap.Error(err))
		return []models.Order{}, nil
	}
	out := make([]models.Order, 0, len(rows))
	for _, row := range rows {
		out = append(out, orderFromRow(row))
	}
	return out, nil
}

func productFromRow(row Row) models.Product {
	p := models.Product{
		ID:              row.String("id", "ID"),
		Name:            row.String("name", "Name"),
		Description:     row.String("description", "Description"),
		FullDescription: row.String("fullDescription", "FullDescription"),
		Price:           row.Decimal("price", "Price"),
		SellPrice:       row.Decimal("sellPrice", "SellPrice"),
		Image:           row.String("image", "Image"),
		Slug:            row.String("slug", "Slug"),
		Features:        row.StringList("features", "Features"),
	}
	p.Images = SplitList(row.String("images", "Images"))
	if len(p.Images) == 0 && p.Image != "" {
		p.Images = []string{p.Image}
	}
	if len(p.Images) > 0 {
		p.Image = p.Images[0]
	}
	if p.SellPrice.IsZero() {
		p.SellPrice = p.Price
	}
	return p
}

func productFields(p models.Product) url.Values {
	features, _ := json.Marshal(p.Features)
	f := url.Values{}
	f.Set("id", p.ID)
	f.Set("name", p.Name)
	f.Set("description", p.Description)
	f.Set("fullDescription", p.FullDescription)
	f.Set("price", p.Price.String())
	f.Set("sellPrice", p.SellPrice.String())
	f.Set("image", p.Image)
	f.Set("images", strings.Join(p.Images, ","))
	f.Set("slug", p.Slug)
	f.Set("features", string(features))
	return f
}

func voucherFromRow(row Row) models.Voucher {
	return models.Voucher{
		ID:          row.String("id", "ID"),
		Code:        row.String("code", "Code"),
		Discount:    row.Decimal("discount", "Discount"),
		Type:        models.DiscountType(row.String("type", "Type")),
		Description: row.String("description", "Description"),
		Active:      row.Bool("active", "Active"),
		UsageLimit:  row.Int("usageLimit", "UsageLimit"),
		UsageCount:  row.Int("usageCount", "UsageCount"),
	}
}

func voucherFields(v models.Voucher) url.Values {
	f := url.Values{}
	f.Set("id", v.ID)
	f.Set("code", v.Code)
	f.Set("discount", v.Discount.String())
	f.Set("type", string(v.Type))
	f.Set("description", v.Description)
	if v.Active {
		f.Set("active", "true")
	} else {
		f.Set("active", "false")
	}
	f.Set("usageLimit", strconv.Itoa(v.UsageLimit))
	f.Set("usageCount", strconv.Itoa(v.UsageCount))
	return f
}

// Order columns keep the legacy capitalized names the sheet has always used.
func orderFromRow(row Row) models.Order {
	return models.Order{
		OrderID:       row.String("OrderID", "orderId"),
		OrderDate:     row.String("Date", "orderDate"),
		Name:          row.String("CustomerName", "name"),
		Email:         row.String("Email", "email"),
		Phone:         row.String("Phone", "phone"),
		Address:       row.String("Address", "address"),
		ProductID:     row.String("ProductID", "productId"),
		ProductName:   row.String("ProductName", "productName"),
		OriginalPrice: row.Decimal("OriginalPrice", "originalPrice"),
		Discount:      row.Decimal("Discount", "discount"),
		DiscountType:  models.DiscountType(row.String("DiscountType", "discountType")),
		VoucherCode:   row.String("VoucherCode", "voucherCode"),
		FinalPrice:    row.Decimal("FinalPrice", "finalPrice"),
	}
}

func orderFields(o models.Order) url.Values {
	voucher := o.VoucherCode
	if voucher == "" {
		voucher = "None"
	}
	f := url.Values{}
	f.Set("OrderID", o.OrderID)
	f.Set("Date", o.OrderDate)
	f.Set("CustomerName", o.Name)
	f.Set("Email", o.Email)
	f.Set("Phone", o.Phone)
	f.Set("Address", o.Address)
	f.Set("ProductID", o.ProductID)
	f.Set("ProductName", o.ProductName)
	f.Set("OriginalPrice", o.OriginalPrice.String())
	f.Set("Discount", o.Discount.String())
	f.Set("DiscountType", string(o.DiscountType))
	f.Set("VoucherCode", voucher)
	f.Set("FinalPrice", o.FinalPrice.String())
	return f
}
