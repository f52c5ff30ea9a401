package options

type FlagEnum int

const (
	FlagSerde FlagEnum = 1 << iota // emit serialization impls delegating to the serde capability
	FlagTests                      // emit the self-test module alongside the type

	FlagAll  FlagEnum = (1 << iota) - 1 //all flags combined
	FlagNone FlagEnum = 0               // no flags selected
)

// Has reports whether every flag in other is set.
func (f FlagEnum) Has(other FlagEnum) bool {
	return f&other == other
}
