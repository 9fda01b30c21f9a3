package telemetry

import (
	"go.opentelemetry.io/otel/attribute"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// Span attribute keys. Custom keys carry the 'app.' or 'vending.' prefix to avoid clashes with semantic conventions.
var (
	AppProductIDKey    = attribute.Key("app.product.id")
	AppProductNameKey  = attribute.Key("app.product.name")
	AppProductStockKey = attribute.Key("app.product.stock")
	AppProductCountKey = attribute.Key("app.product.count")

	VendingCoinKey           = attribute.Key("vending.coin")
	VendingBalanceKey        = attribute.Key("vending.balance")
	VendingChangeKey         = attribute.Key("vending.change")
	VendingRefundAmountKey   = attribute.Key("vending.refund.amount")
	VendingErrorCodeKey      = attribute.Key("vending.error.code")
	VendingCatalogSourceKey  = attribute.Key("vending.catalog.source")
	VendingCatalogEntriesKey = attribute.Key("vending.catalog.entries")

	DBSystemJSONFile = semconv.DBSystemKey.String("jsonfile")
	DBOperationRead  = semconv.DBOperationNameKey.String("read")
	FilePathKey      = semconv.CodeFilepathKey
)

// Structured logging field keys.
const (
	LogFieldProductID = "product_id"
	LogFieldCoin      = "coin"
	LogFieldBalance   = "balance"
	LogFieldChange    = "change"
	LogFieldAmount    = "amount"
	LogFieldErrorCode = "error_code"
	LogFieldCount     = "count"
)
