package graph

import "github.com/LaurenzPoll/knowledge-graph-agent/pkg/types"

// DemoTriples returns the built-in demonstration fact set. Topics overlap on
// purpose (Julius Caesar is both a person and a play, Henry V a king and a
// play) so entity filtering has something to disambiguate.
func DemoTriples() []types.Triple {
	t := types.NewTriple
	return []types.Triple{
		// Space
		t("Apollo 11", "launched on", "July 16, 1969"),
		t("Apollo 11", "landed on", "July 20, 1969"),
		t("Apollo 11", "returned to Earth on", "July 24, 1969"),
		t("Neil Armstrong", "was commander of", "Apollo 11"),
		t("Buzz Aldrin", "was lunar module pilot of", "Apollo 11"),
		t("Michael Collins", "was command module pilot of", "Apollo 11"),
		t("Saturn V", "launched", "Apollo 11"),
		t("NASA", "operated", "Apollo 11"),
		t("Wernher von Braun", "designed", "Saturn V"),
		t("Saturn V", "first launched on", "November 9, 1967"),
		t("Saturn V", "last launched on", "May 14, 1973"),

		// Napoleon Bonaparte
		t("Napoleon Bonaparte", "born on", "August 15, 1769"),
		t("Napoleon Bonaparte", "crowned emperor on", "December 2, 1804"),
		t("Napoleon Bonaparte", "exiled to", "Elba"),
		t("Napoleon Bonaparte", "exiled to", "Saint Helena"),
		t("Napoleon Bonaparte", "died on", "May 5, 1821"),

		// Julius Caesar
		t("Julius Caesar", "born on", "July 12, 100 BC"),
		t("Julius Caesar", "crossed", "the Rubicon"),
		t("Julius Caesar", "was dictator of", "Roman Republic"),
		t("Julius Caesar", "assassinated on", "March 15, 44 BC"),
		t("Julius Caesar", "assassinated in", "Rome"),

		// William Shakespeare
		t("William Shakespeare", "born on", "April 26, 1564"),
		t("William Shakespeare", "born in", "Stratford-upon-Avon"),
		t("William Shakespeare", "died on", "April 23, 1616"),
		t("William Shakespeare", "wrote", "Hamlet"),
		t("William Shakespeare", "wrote", "Julius Caesar"),
		t("William Shakespeare", "wrote", "Henry V"),

		t("Henry V", "was King of", "England"),
		t("Henry V", "died on", "August 31, 1422"),
		t("Roman Republic", "capital was", "Rome"),
		t("Stratford-upon-Avon", "is in", "England"),

		// The Beatles
		t("The Beatles", "formed in", "Liverpool"),
		t("The Beatles", "released", "Abbey Road"),
		t("Abbey Road", "released on", "September 26, 1969"),
		t("John Lennon", "was member of", "The Beatles"),
		t("Paul McCartney", "was member of", "The Beatles"),
		t("George Harrison", "was member of", "The Beatles"),
		t("Ringo Starr", "was member of", "The Beatles"),
		t("John Lennon", "born in", "Liverpool"),

		// CRISPR
		t("Jennifer Doudna", "co-invented", "CRISPR-Cas9"),
		t("CRISPR-Cas9", "used for", "gene editing"),
		t("Jennifer Doudna", "won", "Nobel Prize in Chemistry 2020"),
	}
}
