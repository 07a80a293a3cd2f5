package main

import (
	"errors"
	"fmt"
	"log"

	hashmap "github.com/ninja4826/arduino-hashmap"
)

func main() {
	m := hashmap.NewString[int](16)
	defer m.Destroy()

	// Insert some data, overwriting one key.
	if err := m.Put("a", 1); err != nil {
		log.Fatalf("put a: %v", err)
	}
	if err := m.Put("b", 2); err != nil {
		log.Fatalf("put b: %v", err)
	}
	if err := m.Put("a", 3); err != nil {
		log.Fatalf("overwrite a: %v", err)
	}

	fmt.Printf("stored %d entries in %d slots\n", m.Len(), m.Cap())

	for _, k := range []string{"a", "b", "missing"} {
		v, err := m.Get(k)
		switch {
		case err == nil:
			fmt.Printf("%s => %d\n", k, v)
		case errors.Is(err, hashmap.ErrNotFound):
			fmt.Printf("%s not found\n", k)
		default:
			log.Fatalf("get %s: %v", k, err)
		}
	}

	// Enumerate the stored keys.
	keys, err := m.Keys()
	if err != nil {
		log.Fatalf("keys: %v", err)
	}
	fmt.Println("keys:", keys)

	// Remove returns the stored value.
	old, err := m.Remove("b")
	if err != nil {
		log.Fatalf("remove b: %v", err)
	}
	fmt.Printf("removed b => %d\n", old)

	// Insert enough entries to force growth past the initial capacity.
	for i := 0; i < 40; i++ {
		key := fmt.Sprintf("key-%02d", i)
		if err := m.Put(key, i*100); err != nil {
			log.Fatalf("put %s: %v", key, err)
		}
	}
	fmt.Printf("after growth: %d entries in %d slots\n", m.Len(), m.Cap())

	// Sum every stored value.
	total := 0
	_ = m.Iterate(func(v int) error {
		total += v
		return nil
	})
	fmt.Println("sum of values:", total)

	fmt.Println("Example completed successfully")
}
