package entity

// Kind names a backend collection for cache invalidation.
type Kind string

const (
	KindAppointment Kind = "appointment"
	KindShift       Kind = "shift"
	KindWorkShift   Kind = "workshift"
	KindService     Kind = "service"
	KindUser        Kind = "user"
	KindReview      Kind = "review"
	KindContact     Kind = "contact"
	KindFavorite    Kind = "favorite"
)
