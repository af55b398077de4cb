// Copyright (c) 2025 Jeremy Hahn
// Copyright (c) 2025 Automate The Things, LLC
//
// This file is part of go-shades.
//
// go-shades is dual-licensed:
//
// 1. GNU Affero General Public License v3.0 (AGPL-3.0)
//    See LICENSE file or visit https://www.gnu.org/licenses/agpl-3.0.html
//
// 2. Commercial License
//    Contact licensing@automatethethings.com for commercial licensing options.

package shades_test

import (
	"errors"
	"fmt"
	"log"

	"github.com/jeremyhahn/go-shades/pkg/shades"
)

// ExampleReconstruct splits a two-coefficient secret and recovers it from
// two of three shares.
func ExampleReconstruct() {
	block, err := shades.NewBlock([]int{3, 5}, 2)
	if err != nil {
		log.Fatal(err)
	}

	store, err := shades.Distribute(block, 3)
	if err != nil {
		log.Fatal(err)
	}
	for _, p := range store.Pairs() {
		fmt.Println(p)
	}

	f, g, err := shades.Reconstruct(store.Subset([]int{1, 3}), 2)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("F:", f)
	fmt.Println("G:", g)

	// Output:
	// (1, 8, 235)
	// (2, 13, 225)
	// (3, 18, 215)
	// F: 3 + 5x
	// G: 245 + 241x
}

// ExampleSession_Reconstruct shows a forged share being rejected.
func ExampleSession_Reconstruct() {
	store, err := shades.NewStore([]int{1, 2}, []int{9, 13}, []int{235, 225})
	if err != nil {
		log.Fatal(err)
	}

	session, err := shades.NewSession(store)
	if err != nil {
		log.Fatal(err)
	}

	_, _, err = session.Reconstruct(2)
	fmt.Println(errors.Is(err, shades.ErrCheatingDetected))

	// Output:
	// true
}
