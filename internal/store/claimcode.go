package store

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
)

// Claim codes look like TIGER-MAPLE-7492: an animal, a tree, and four
// digits. Two 64-word lists plus the number give ~25 bits of entropy,
// enough for an identifier that is guessed at 1-in-33-million and can
// still be read over the phone.

var claimAnimals = [64]string{
	"BADGER", "BISON", "BOBCAT", "CAMEL", "CONDOR", "COUGAR", "COYOTE", "CRANE",
	"DINGO", "DONKEY", "EAGLE", "EGRET", "FALCON", "FERRET", "GECKO", "GIBBON",
	"HERON", "HORNET", "HYENA", "IBEX", "IGUANA", "JACKAL", "JAGUAR", "KOALA",
	"LEMUR", "LIZARD", "LLAMA", "LYNX", "MAGPIE", "MARMOT", "MOOSE", "OCELOT",
	"ORIOLE", "OSPREY", "OTTER", "PANDA", "PARROT", "PELICAN", "PUFFIN", "PYTHON",
	"RABBIT", "RACCOON", "RAVEN", "ROBIN", "SALMON", "SERVAL", "SHRIKE", "SKUNK",
	"SPARROW", "SPIDER", "STORK", "SWALLOW", "TAPIR", "TIGER", "TOUCAN", "TURTLE",
	"VIPER", "WALRUS", "WEASEL", "WHALE", "WOMBAT", "ZEBRA", "BEAVER", "MARTEN",
}

var claimTrees = [64]string{
	"ACACIA", "ALDER", "ASPEN", "BALSA", "BAMBOO", "BANYAN", "BAOBAB", "BIRCH",
	"CEDAR", "CHERRY", "CHESTNUT", "CYPRESS", "DOGWOOD", "EBONY", "ELDER", "ELM",
	"FIG", "FIR", "GINKGO", "HAWTHORN", "HAZEL", "HEMLOCK", "HICKORY", "HOLLY",
	"JUNIPER", "LARCH", "LAUREL", "LINDEN", "LOCUST", "MAGNOLIA", "MAHOGANY", "MAPLE",
	"MESQUITE", "MULBERRY", "MYRTLE", "OAK", "OLIVE", "PALM", "PECAN", "PINE",
	"PLUM", "POPLAR", "QUINCE", "REDWOOD", "ROWAN", "SEQUOIA", "SPRUCE", "SUMAC",
	"SYCAMORE", "TAMARIND", "TEAK", "TUPELO", "WALNUT", "WILLOW", "YEW", "ZELKOVA",
	"CATALPA", "BUCKEYE", "COTTONWOOD", "IRONWOOD", "SASSAFRAS", "SNOWBELL", "VIBURNUM", "WISTERIA",
}

// NewClaimCode mints a fresh WORD-WORD-NNNN code from crypto/rand.
func NewClaimCode() (string, error) {
	var buf [6]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return "", fmt.Errorf("store: generating claim code: %w", err)
	}
	animal := claimAnimals[int(buf[0])%len(claimAnimals)]
	tree := claimTrees[int(buf[1])%len(claimTrees)]
	num := binary.BigEndian.Uint32(buf[2:6]) % 10000
	return fmt.Sprintf("%s-%s-%04d", animal, tree, num), nil
}
