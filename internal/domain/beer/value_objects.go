package beer

const (
	MaxNameLength = 50
	MaxUPCLength  = 255
)

type Style string

const (
	StyleLager   Style = "LAGER"
	StylePilsner Style = "PILSNER"
	StyleStout   Style = "STOUT"
	StyleGose    Style = "GOSE"
	StylePorter  Style = "PORTER"
	StyleAle     Style = "ALE"
	StyleWheat   Style = "WHEAT"
	StyleIPA     Style = "IPA"
	StylePaleAle Style = "PALE_ALE"
	StyleSaison  Style = "SAISON"
)

var styles = []Style{
	StyleLager,
	StylePilsner,
	StyleStout,
	StyleGose,
	StylePorter,
	StyleAle,
	StyleWheat,
	StyleIPA,
	StylePaleAle,
	StyleSaison,
}

func Styles() []Style {
	out := make([]Style, len(styles))
	copy(out, styles)
	return out
}

func (s Style) IsValid() bool {
	for _, v := range styles {
		if v == s {
			return true
		}
	}
	return false
}

func (s Style) String() string { return string(s) }
