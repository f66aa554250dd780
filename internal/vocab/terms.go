package vocab

// militaryTerms is the built-in domain vocabulary: terminology that signals
// military relevance in encyclopedia text. All entries are lowercase because
// matching is performed on lower-cased words.
var militaryTerms = []string{
	"aircraft",
	"ammunition",
	"armament",
	"armed",
	"armor",
	"armour",
	"army",
	"arsenal",
	"artillery",
	"attack",
	"barracks",
	"battalion",
	"battle",
	"battlefield",
	"bomb",
	"bomber",
	"camouflage",
	"carrier",
	"cavalry",
	"combat",
	"conflict",
	"defence",
	"defense",
	"destroyer",
	"drone",
	"enemy",
	"fighter",
	"fleet",
	"fortification",
	"garrison",
	"grenade",
	"gun",
	"guns",
	"infantry",
	"invasion",
	"militia",
	"missile",
	"military",
	"munitions",
	"naval",
	"navy",
	"ordnance",
	"radar",
	"reconnaissance",
	"regiment",
	"rifle",
	"siege",
	"soldier",
	"soldiers",
	"squadron",
	"strategic",
	"submarine",
	"tactical",
	"tank",
	"torpedo",
	"troops",
	"veteran",
	"war",
	"warfare",
	"warship",
	"weapon",
	"weapons",
}
