package enums

import (
	"github.com/evan-idocoding/zsetting/enum"
	"github.com/evan-idocoding/zsetting/setting"
)

//go:generate go tool stringer -type JoinAlgorithm -linecomment

// JoinAlgorithm is a join implementation. A join_algorithm setting lists them
// in order of preference.
type JoinAlgorithm uint8

const (
	JoinDefault            JoinAlgorithm = iota // default
	JoinAuto                                    // auto
	JoinHash                                    // hash
	JoinPartialMerge                            // partial_merge
	JoinPreferPartialMerge                      // prefer_partial_merge
	JoinParallelHash                            // parallel_hash
	JoinGraceHash                               // grace_hash
	JoinDirect                                  // direct
	JoinFullSortingMerge                        // full_sorting_merge
)

var joinAlgorithmTraits = enum.Must(enum.New(
	[]JoinAlgorithm{
		JoinDefault,
		JoinAuto,
		JoinHash,
		JoinPartialMerge,
		JoinPreferPartialMerge,
		JoinParallelHash,
		JoinGraceHash,
		JoinDirect,
		JoinFullSortingMerge,
	},
	JoinAlgorithm.String,
))

// Traits implements enum.Enum.
func (JoinAlgorithm) Traits() *enum.Traits[JoinAlgorithm] { return joinAlgorithmTraits }

// JoinAlgorithmField is the setting type of join_algorithm.
type JoinAlgorithmField = setting.OrderedMultiEnumField[JoinAlgorithm]
