package service

import "github.com/thegoanwedding/marketplace/internal/logging"

// EventPublisher is satisfied by *rabbitmq.Publisher. A nil publisher means
// no broker is configured.
type EventPublisher interface {
	Publish(routingKey string, payload any) error
}

const (
	KeyVendorCreated     = "vendor.created"
	KeyVendorUpdated     = "vendor.updated"
	KeyVendorDeleted     = "vendor.deleted"
	KeyVendorImported    = "vendor.imported"
	KeyVendorReviewed    = "vendor.reviewed"
	KeyCategoryCreated   = "category.created"
	KeyBlogCreated       = "blog.created"
	KeyBlogUpdated       = "blog.updated"
	KeyBlogDeleted       = "blog.deleted"
	KeyInvitationsIssued = "invitation.issued"
	KeyRSVPSubmitted     = "rsvp.submitted"
	KeyWeddingCreated    = "wedding.created"
)

func publish(p EventPublisher, routingKey string, payload any) {
	if p == nil {
		return
	}
	if err := p.Publish(routingKey, payload); err != nil {
		l := logging.Component("publisher")
		l.Warn().Err(err).Str("routing_key", routingKey).Msg("publish failed")
	}
}
