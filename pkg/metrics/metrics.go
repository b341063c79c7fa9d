package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ReactionsApplied counts reaction votes by intent and outcome
	ReactionsApplied = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "quillbase_reactions_applied_total",
		Help: "Reaction votes applied, labelled by intent and resulting state.",
	}, []string{"intent", "result"})

	// CommentsSubmitted counts comments accepted into the moderation queue
	CommentsSubmitted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "quillbase_comments_submitted_total",
		Help: "Comments submitted for review.",
	})

	// CommentsApproved counts comments released by moderation
	CommentsApproved = promauto.NewCounter(prometheus.CounterOpts{
		Name: "quillbase_comments_approved_total",
		Help: "Comments approved by an admin.",
	})

	// BlogsCreated counts blogs created through the API
	BlogsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "quillbase_blogs_created_total",
		Help: "Blogs created.",
	})
)
