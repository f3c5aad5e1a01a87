// Package policy implements the capability matrix gating every mutation.
// CanPerform is a pure function of the principal's tier and the action; it
// holds no state and is evaluated ahead of any catalog operation.
package policy

import "github.com/sequemusic/backend/internal/domain"

type Action string

const (
	ViewCatalog        Action = "view_catalog"
	CreateTrack        Action = "create_track"
	EditTrack          Action = "edit_track"
	DeleteTrack        Action = "delete_track"
	SetChartPosition   Action = "set_chart_position"
	CreateArtist       Action = "create_artist"
	EditArtist         Action = "edit_artist"
	DeleteArtist       Action = "delete_artist"
	CreateGenre        Action = "create_genre"
	EditGenre          Action = "edit_genre"
	DeleteGenre        Action = "delete_genre"
	CreateNews         Action = "create_news"
	EditNews           Action = "edit_news"
	DeleteNews         Action = "delete_news"
	CreateStreamRecord Action = "create_stream_record"
	DeleteStreamRecord Action = "delete_stream_record"
	CreateRating       Action = "create_rating"
	ViewOwnRatings     Action = "view_own_ratings"
)

type tier int

const (
	tierAnonymous tier = iota
	tierStandard
	tierPremium
	tierAdmin
)

func tierOf(p domain.Principal) tier {
	switch {
	case !p.Authenticated:
		return tierAnonymous
	case p.Admin:
		return tierAdmin
	case p.Premium:
		return tierPremium
	default:
		return tierStandard
	}
}

// minTier maps each action to the lowest tier allowed to perform it. Admin is
// a superset of premium, premium of standard, standard of anonymous; the
// matrix in the product rules is monotone, so a single threshold per action
// encodes it exactly.
var minTier = map[Action]tier{
	ViewCatalog:        tierAnonymous,
	CreateTrack:        tierPremium,
	EditTrack:          tierAdmin,
	DeleteTrack:        tierAdmin,
	SetChartPosition:   tierAdmin,
	CreateArtist:       tierAdmin,
	EditArtist:         tierAdmin,
	DeleteArtist:       tierAdmin,
	CreateGenre:        tierAdmin,
	EditGenre:          tierAdmin,
	DeleteGenre:        tierAdmin,
	CreateNews:         tierAdmin,
	EditNews:           tierAdmin,
	DeleteNews:         tierAdmin,
	CreateStreamRecord: tierPremium,
	DeleteStreamRecord: tierAdmin,
	CreateRating:       tierStandard,
	ViewOwnRatings:     tierStandard,
}

// CanPerform reports whether the principal may perform the action. Unknown
// actions are denied.
func CanPerform(p domain.Principal, action Action) bool {
	min, ok := minTier[action]
	if !ok {
		return false
	}
	return tierOf(p) >= min
}
