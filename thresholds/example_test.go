package thresholds_test

import (
	"context"
	"fmt"

	"github.com/jmgilman/go/fs/billy"
	"github.com/jmgilman/go/reuse/prototype"
	"github.com/jmgilman/go/reuse/thresholds"
)

func ExampleLoader_LoadFile() {
	ctx := context.Background()

	mfs := billy.NewMemory()
	_ = mfs.WriteFile("thresholds.yaml", []byte("out_of_memory: 90\n"), 0o644)

	cfg, err := thresholds.NewLoader(mfs).LoadFile(ctx, "thresholds.yaml")
	if err != nil {
		fmt.Println(err)
		return
	}

	reg, err := prototype.Build(ctx, cfg)
	if err != nil {
		fmt.Println(err)
		return
	}

	resp := reg.Get(prototype.OutOfMemory)
	resp.SeqNum = 536
	fmt.Println(resp)
	fmt.Println(reg.Get(prototype.CPUOverload))
	// Output:
	// seq_num: 536 category: out_of_memory threshold: 90
	// seq_num: 0 category: cpu_overload threshold: 75
}
