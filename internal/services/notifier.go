package services

import "log"

// PriceAlertNotifier records a price-alert subscription. The shipped
// implementation only logs; a real notification backend slots in
// behind the same interface.
type PriceAlertNotifier interface {
	Subscribe(email, route string) error
}

// LogNotifier writes subscriptions to the process log.
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (LogNotifier) Subscribe(email, route string) error {
	log.Printf("price alert subscription: email=%s route=%s", email, route)
	return nil
}
