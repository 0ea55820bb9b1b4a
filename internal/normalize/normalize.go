// Package normalize turns raw store records into canonical typed models.
// Backends disagree on representation (JSON numbers, 0/1 booleans,
// JSON-encoded text columns); callers always receive well-typed values,
// with malformed data falling back to zero defaults instead of erroring.
package normalize

import (
	"encoding/json"
	"strconv"

	"beautestore/internal/models"
	"beautestore/internal/store"
)

// Product shapes a raw product record. Numeric fields default to 0,
// images default to an empty list, availability defaults to true when
// the field is absent.
func Product(rec store.Record) models.Product {
	available := true
	if v, ok := rec["is_available"]; ok {
		available = toBool(v)
	}
	return models.Product{
		ID:               toString(rec["id"]),
		Name:             toString(rec["name"]),
		Description:      toString(rec["description"]),
		ShortDescription: toString(rec["short_description"]),
		Price:            toInt(rec["price"]),
		OriginalPrice:    toInt(rec["original_price"]),
		CategoryID:       toString(rec["category_id"]),
		Images:           toStringSlice(rec["images"]),
		IsNew:            toBool(rec["is_new"]),
		IsPromo:          toBool(rec["is_promo"]),
		IsFeatured:       toBool(rec["is_featured"]),
		IsAvailable:      available,
		Stock:            toInt(rec["stock"]),
		TechnicalDetails: toString(rec["technical_details"]),
		Views:            toInt(rec["views"]),
		CreatedDate:      toString(rec["created_date"]),
	}
}

// Category shapes a raw category record. The relational backend stores
// the display rank in an order_index column; both spellings are read.
func Category(rec store.Record) models.Category {
	rank, ok := rec["order"]
	if !ok {
		rank = rec["order_index"]
	}
	return models.Category{
		ID:          toString(rec["id"]),
		Name:        toString(rec["name"]),
		Description: toString(rec["description"]),
		ImageURL:    toString(rec["image_url"]),
		Order:       toInt(rank),
		CreatedDate: toString(rec["created_date"]),
	}
}

// Order shapes a raw order record, decoding line items from either a
// native sequence or a JSON-encoded text column.
func Order(rec store.Record) models.Order {
	return models.Order{
		ID:            toString(rec["id"]),
		OrderNumber:   toString(rec["order_number"]),
		ClientName:    toString(rec["client_name"]),
		ClientPhone:   toString(rec["client_phone"]),
		ClientEmail:   toString(rec["client_email"]),
		ClientAddress: toString(rec["client_address"]),
		Items:         toItems(rec["items"]),
		Subtotal:      toInt(rec["subtotal"]),
		DeliveryFee:   toInt(rec["delivery_fee"]),
		Total:         toInt(rec["total"]),
		Status:        toString(rec["status"]),
		Notes:         toString(rec["notes"]),
		AdminNotes:    toString(rec["admin_notes"]),
		CreatedDate:   toString(rec["created_date"]),
	}
}

// Settings shapes a raw site-settings record.
func Settings(rec store.Record) models.SiteSettings {
	return models.SiteSettings{
		ID:                    toString(rec["id"]),
		SiteName:              toString(rec["site_name"]),
		LogoURL:               toString(rec["logo_url"]),
		BannerImage:           toString(rec["banner_image"]),
		BannerTitle:           toString(rec["banner_title"]),
		BannerSubtitle:        toString(rec["banner_subtitle"]),
		ContactPhone:          toString(rec["contact_phone"]),
		ContactWhatsapp:       toString(rec["contact_whatsapp"]),
		ContactEmail:          toString(rec["contact_email"]),
		ContactAddress:        toString(rec["contact_address"]),
		FacebookURL:           toString(rec["facebook_url"]),
		InstagramURL:          toString(rec["instagram_url"]),
		DeliveryFee:           toInt(rec["delivery_fee"]),
		FreeDeliveryThreshold: toInt(rec["free_delivery_threshold"]),
		AboutText:             toString(rec["about_text"]),
		CgvText:               toString(rec["cgv_text"]),
		ShippingPolicy:        toString(rec["shipping_policy"]),
		ReturnPolicy:          toString(rec["return_policy"]),
		PrimaryColor:          toString(rec["primary_color"]),
		SecondaryColor:        toString(rec["secondary_color"]),
		CreatedDate:           toString(rec["created_date"]),
	}
}

// User shapes a raw user record.
func User(rec store.Record) models.User {
	return models.User{
		ID:           toString(rec["id"]),
		FullName:     toString(rec["full_name"]),
		Email:        toString(rec["email"]),
		Role:         toString(rec["role"]),
		PasswordHash: toString(rec["password_hash"]),
	}
}

func toString(value any) string {
	s, _ := value.(string)
	return s
}

// toInt coerces JSON numbers, database integers and numeric strings;
// anything else yields 0.
func toInt(value any) int {
	switch v := value.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case float32:
		return int(v)
	case json.Number:
		if n, err := v.Float64(); err == nil {
			return int(n)
		}
	case string:
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			return int(n)
		}
	}
	return 0
}

// toBool accepts native booleans, 0/1 representations and the literal
// strings "true"/"1".
func toBool(value any) bool {
	switch v := value.(type) {
	case bool:
		return v
	case int:
		return v != 0
	case int64:
		return v != 0
	case float64:
		return v != 0
	case string:
		return v == "true" || v == "1"
	}
	return false
}

// toStringSlice decodes an ordered URL list from a native slice or a
// JSON-encoded string. Malformed input falls back to an empty list.
func toStringSlice(value any) []string {
	switch v := value.(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	case string:
		var out []string
		if err := json.Unmarshal([]byte(v), &out); err != nil || out == nil {
			return []string{}
		}
		return out
	}
	return []string{}
}

// toItems decodes order line items from native records or a
// JSON-encoded string, silently defaulting to an empty list.
func toItems(value any) []models.OrderItem {
	switch v := value.(type) {
	case []models.OrderItem:
		return v
	case []any:
		out := make([]models.OrderItem, 0, len(v))
		for _, item := range v {
			rec, ok := item.(map[string]any)
			if !ok {
				continue
			}
			out = append(out, itemFromRecord(rec))
		}
		return out
	case string:
		var raw []map[string]any
		if err := json.Unmarshal([]byte(v), &raw); err != nil {
			return []models.OrderItem{}
		}
		out := make([]models.OrderItem, 0, len(raw))
		for _, rec := range raw {
			out = append(out, itemFromRecord(rec))
		}
		return out
	}
	return []models.OrderItem{}
}

func itemFromRecord(rec map[string]any) models.OrderItem {
	return models.OrderItem{
		ProductID:    toString(rec["product_id"]),
		ProductName:  toString(rec["product_name"]),
		ProductImage: toString(rec["product_image"]),
		Quantity:     toInt(rec["quantity"]),
		Price:        toInt(rec["price"]),
		Total:        toInt(rec["total"]),
	}
}
