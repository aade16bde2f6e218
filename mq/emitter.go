package mq

import (
	"fmt"
)

type Index struct {
	EntityType string `json:"entity_type"`
	Method     string `json:"method"`
	EntityId   string `json:"entity_id"`
	ItemId     string `json:"item_id"`
	ItemType   string `json:"item_type"`
}

// Emit publishes a workflow event (farmer approved, batch ready, purchase
// settled). Downstream indexing is not wired yet; TODO: publish to the
// traceability indexer once its endpoint is finalized.
func Emit(eventName string, content Index) error {
	fmt.Println(eventName, "emitted", content)
	return nil
}

func Notify(eventName string, content Index) error {
	fmt.Println(eventName, "Notified")
	return nil
}
