package result

import "github.com/abhisek/critterquiz/internal/quiz"

var animalArt = map[quiz.Animal]string{
	quiz.Cat: ` /\_/\
( o.o )
 > ^ <`,
	quiz.Dog: ` / \__
(    @\___
 /         O
/   (_____/
/_____/   U`,
	quiz.Fox: ` /\   /\
//\\_//\\
\_     _/
 / * * \
 \_\O/_/
  /   \`,
	quiz.Hamster: `  ()_()
 ( o.o )
(")_(")`,
	quiz.Horse: `      ,--,
  _ ___/ /\|
 ;( )__, )
; //   '--;
  \     |
   ^    ^`,
}

// renderArt returns the picture for an animal, or "" if there is none.
func renderArt(a quiz.Animal) string {
	return animalArt[a]
}
