package events

import "github.com/atomicstack/barstock/internal/logging"

type InventoryTracer struct{}

var Inventory = InventoryTracer{}

func (InventoryTracer) ProductAdjusted(tabID, well, name string, delta int) {
	logging.Trace("inventory.product.adjust", map[string]interface{}{
		"tab":   tabID,
		"well":  well,
		"name":  name,
		"delta": delta,
	})
}

func (InventoryTracer) ProductRemoved(tabID, well string, index int) {
	logging.Trace("inventory.product.remove", map[string]interface{}{"tab": tabID, "well": well, "index": index})
}

func (InventoryTracer) WellCleared(tabID, well string) {
	logging.Trace("inventory.well.clear", map[string]interface{}{"tab": tabID, "well": well})
}

func (InventoryTracer) TabAdded(id, name string) {
	logging.Trace("inventory.tab.add", map[string]interface{}{"tab": id, "name": name})
}

func (InventoryTracer) TabRemoved(id string) {
	logging.Trace("inventory.tab.remove", map[string]interface{}{"tab": id})
}

func (InventoryTracer) TabRenamed(id, name string) {
	logging.Trace("inventory.tab.rename", map[string]interface{}{"tab": id, "name": name})
}

func (InventoryTracer) WellAdded(tabID, name string) {
	logging.Trace("inventory.well.add", map[string]interface{}{"tab": tabID, "name": name})
}

func (InventoryTracer) WellRemoved(tabID, name string) {
	logging.Trace("inventory.well.remove", map[string]interface{}{"tab": tabID, "name": name})
}

func (InventoryTracer) WellRenamed(tabID, from, to string) {
	logging.Trace("inventory.well.rename", map[string]interface{}{"tab": tabID, "from": from, "to": to})
}

func (InventoryTracer) Selected(tabID, well string) {
	logging.Trace("inventory.select", map[string]interface{}{"tab": tabID, "well": well})
}

func (InventoryTracer) Repaired(tabID, well string, synthesized bool) {
	logging.Trace("inventory.repair", map[string]interface{}{"tab": tabID, "well": well, "synthesized": synthesized})
}

func (InventoryTracer) Rejected(op string, err error) {
	if err == nil {
		return
	}
	logging.Trace("inventory.reject", map[string]interface{}{"op": op, "error": err.Error()})
}
