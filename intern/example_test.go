package intern_test

import (
	"fmt"
	"strings"

	"github.com/jmgilman/go/reuse/intern"
)

func search(store *intern.Store[string], keywords ...*intern.Entry[string]) {
	keys, err := store.KeysOf(keywords...)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("searching for:", strings.Join(keys, " "))
}

func ExampleStore() {
	store := intern.New[string]()

	// search #1: "football worldcup"
	football := store.Intern("football")
	worldcup := store.Intern("worldcup")
	search(store, football, worldcup)

	// search #2: "worldcup football"
	worldcup2 := store.Intern("worldcup")
	football2 := store.Intern("football")
	search(store, worldcup2, football2)

	fmt.Println("entries:", store.Len())
	fmt.Println("shared:", football == football2 && worldcup == worldcup2)
	// Output:
	// searching for: football worldcup
	// searching for: worldcup football
	// entries: 2
	// shared: true
}

func ExampleStore_KeyOf() {
	a := intern.New[string]()
	b := intern.New[string]()

	_, err := a.KeyOf(b.Intern("football"))
	fmt.Println(err != nil)
	// Output: true
}
