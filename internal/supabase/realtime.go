package supabase

import (
	"github.com/supabase-community/supabase-go"
)

// RealtimeClient notifies the admin dashboard about order activity.
// Supabase Realtime picks database writes up automatically; explicit
// publishing here is a placeholder until the Go client grows a direct
// Realtime publish API.
type RealtimeClient struct {
	client *supabase.Client
}

func NewRealtimeClient(client *supabase.Client) *RealtimeClient {
	return &RealtimeClient{
		client: client,
	}
}

func (r *RealtimeClient) PublishEvent(channel string, event string, payload map[string]interface{}) error {
	// Database writes on the orders table already trigger Realtime
	// change events for subscribed dashboards.
	return nil
}

func (r *RealtimeClient) PublishOrderEvent(orderID string, event string, payload map[string]interface{}) error {
	return r.PublishEvent("orders:"+orderID, event, payload)
}

// Event payloads
func OrderCreatedPayload(orderID string, caseName string, totalPrice int) map[string]interface{} {
	return map[string]interface{}{
		"order_id":    orderID,
		"case_name":   caseName,
		"total_price": totalPrice,
		"status":      "new",
	}
}

func OrderStatusChangedPayload(orderID string, status string) map[string]interface{} {
	return map[string]interface{}{
		"order_id": orderID,
		"status":   status,
	}
}
