package messages

const (
	BadStatusCodeMsg    = "API returned status code %d on URL %s"
	FailedToParseMsg    = "failed to parse API response"
	RequestFailedMsg    = "API request failed on URL %s"
	UnknownPlatformMsg  = "unknown platform %s"
	PlayerNotFound      = "player not found"
	TooManyRequests     = "too many requests, try again later"
	InvalidCredential   = "provider credential invalid or expired"
	ProviderUnavailable = "match data provider unavailable, try again later"
	InternalError       = "something went wrong, try again later"
	FavoriteNotFound    = "favorite not found"
)
