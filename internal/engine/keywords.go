package engine

// DefaultKeywords seeds the keyword cipher. Mid-length words with a good
// spread of letters; short keywords leave too much of the alphabet in
// near-identity order and make puzzles guessable.
var DefaultKeywords = []string{
	"AMBUSH", "BEACON", "BRAVADO", "CANYON", "CIPHER", "CRIMSON",
	"DYNAMO", "ECLIPSE", "EMBER", "FALCON", "FROSTBITE", "GALAXY",
	"GLACIER", "HARBOR", "HORIZON", "ISLAND", "JAVELIN", "JOURNEY",
	"KESTREL", "KINGDOM", "LANTERN", "LUMBER", "MARITIME", "MONARCH",
	"NEBULA", "NOCTURNE", "OBELISK", "ORCHARD", "PANTHER", "PUZZLE",
	"QUARTZ", "QUIVER", "RAVEN", "RHAPSODY", "SAFFRON", "SKYWARD",
	"TEMPEST", "THUNDER", "UMBRELLA", "UPROAR", "VELVET", "VOYAGE",
	"WHISPER", "WILDCAT", "XENON", "YONDER", "ZEALOT", "ZEPHYR",
}
