package schema

const CartEventSchemaTextV1 = `{
	"type": "record",
	"namespace": "storefront",
	"name": "cart_event",
	"fields" : [
		{"name": "event_type", "type": "string"},
		{"name": "product_id", "type": "long"},
		{"name": "item_key", "type": "string"},
		{"name": "quantity", "type": "long"},
		{"name": "item_count", "type": "long"}
	]
}`

type CartEventV1 struct {
	EventType string `avro:"event_type"`
	ProductID int    `avro:"product_id"`
	ItemKey   string `avro:"item_key"`
	Quantity  int    `avro:"quantity"`
	ItemCount int    `avro:"item_count"`
}
