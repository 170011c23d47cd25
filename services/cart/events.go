package cart

const (
	TopicName           = "cart"
	cartCreatedName     = TopicName + ".created"
	lineItemAddedName   = TopicName + ".lineItemAdded"
	lineItemRemovedName = TopicName + ".lineItemRemoved"
	cartClearedName     = TopicName + ".cleared"
)

type CartCreated struct {
	CartUID string
}

func (e CartCreated) GetEventTypeName() string {
	return cartCreatedName
}

func (e CartCreated) GetAggregateName() string {
	return e.CartUID
}

type LineItemAdded struct {
	CartUID   string
	LineUID   string
	VariantID string
	Quantity  int64
}

func (e LineItemAdded) GetEventTypeName() string {
	return lineItemAddedName
}

func (e LineItemAdded) GetAggregateName() string {
	return e.CartUID
}

type LineItemRemoved struct {
	CartUID   string
	LineUID   string
	VariantID string
}

func (e LineItemRemoved) GetEventTypeName() string {
	return lineItemRemovedName
}

func (e LineItemRemoved) GetAggregateName() string {
	return e.CartUID
}

type CartCleared struct {
	CartUID string
}

func (e CartCleared) GetEventTypeName() string {
	return cartClearedName
}

func (e CartCleared) GetAggregateName() string {
	return e.CartUID
}
