package compiler_test

import (
	"errors"
	"math/rand"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"gobpc/pkg/compiler"
	"gobpc/pkg/pyvm"
)

// mulSource reads a and b and prints a*b, using two scratch cells.
const mulSource = `read a and b
,>,<

| a | b | c | d |
compute c = a*b using d as temp (pointer starts and ends and a)
[

    sum b to c and copy in d (ends in b)
    >[->+>+<<]

    move d in b (ends in d)
    >>[-<<+>>]

    back on a
    <<<-
]

print c
>>.
`

var tiers = []compiler.Tier{compiler.TierDirect, compiler.TierFused, compiler.TierOffset}

func config(tier compiler.Tier, memory int) compiler.Config {
	cfg := compiler.DefaultConfig()
	cfg.Tier = tier
	cfg.MemorySize = memory
	return cfg
}

func run(src string, cfg compiler.Config, input ...int) *pyvm.Machine {
	code, err := compiler.Compile(src, cfg)
	Expect(err).NotTo(HaveOccurred())
	vm, err := pyvm.Exec(code, input, pyvm.WithStepLimit(1_000_000))
	Expect(err).NotTo(HaveOccurred(), "generated code:\n%s", code)
	return vm
}

var _ = Describe("Generated programs", func() {
	DescribeTable("should multiply two numbers with every tier",
		func(tier compiler.Tier, comments, dump bool) {
			cfg := config(tier, 5)
			cfg.Comments = comments
			cfg.DumpMemory = dump

			vm := run(mulSource, cfg, 5, 3)

			Expect(vm.Output).To(Equal([]int{15}))
			Expect(vm.Memory[:5]).To(Equal([]int{0, 3, 15, 0, 0}))
			Expect(vm.Pointer).To(Equal(2))
			Expect(vm.Stdout()).To(HavePrefix("15\n"))
		},
		Entry("direct", compiler.TierDirect, false, false),
		Entry("fused", compiler.TierFused, false, false),
		Entry("offset", compiler.TierOffset, false, false),
		Entry("offset with comments", compiler.TierOffset, true, false),
		Entry("fused with comments and dump", compiler.TierFused, true, true),
		Entry("offset with dump", compiler.TierOffset, false, true),
	)

	DescribeTable("should wrap negative offsets like single steps",
		func(src string, memory, pointer int) {
			for _, tier := range tiers {
				vm := run(src, config(tier, memory))
				Expect(vm.Pointer).To(Equal(pointer), "tier %s", tier)
			}
		},
		Entry("seven left of five", "<<<<<<<+", 5, 3),
		Entry("exactly one lap", "<<<<<+", 5, 0),
		Entry("twelve right of five", ">>>>>>>>>>>>+", 5, 2),
		Entry("left then right across the boundary", "<<+>>>>+<", 4, 1),
		Entry("deferred offset before a loop", "+<<<[->>>+<<<]", 5, 2),
	)

	It("should report the final pointer in the memory dump", func() {
		for _, tier := range tiers {
			cfg := config(tier, 5)
			cfg.DumpMemory = true

			vm := run("+>++>+++<", cfg)

			Expect(vm.Stdout()).To(Equal("\n~~~ Program Terminated ~~~\n" +
				"Pointer: 1\n" +
				"Memory:\n" +
				"      0 |    1   2   3   0   0   0   0   0   0   0   0   0   0   0   0   0\n"))
		}
	})

	It("should print one row per 16 cells", func() {
		cfg := config(compiler.TierOffset, 20)
		cfg.DumpMemory = true

		vm := run(strings.Repeat(">", 17)+"+", cfg)

		lines := strings.Split(strings.TrimSuffix(vm.Stdout(), "\n"), "\n")
		Expect(lines).To(HaveLen(6))
		Expect(lines[2]).To(Equal("Pointer: 17"))
		Expect(lines[4]).To(HavePrefix("      0 |"))
		Expect(lines[5]).To(Equal("     16 |    0   1   0   0" + strings.Repeat("   0", 12)))
	})

	It("should read zero when input runs out", func() {
		for _, tier := range tiers {
			vm := run(",>,>,", config(tier, 5), 4)
			Expect(vm.Memory[:3]).To(Equal([]int{4, 0, 0}))
		}
	})

	Context("bracket balance", func() {
		It("should close every block exactly once", func() {
			for _, tier := range tiers {
				cfg := config(tier, 8)
				cfg.IndentWidth = 1
				code, err := compiler.Compile(mulSource, cfg)
				Expect(err).NotTo(HaveOccurred())

				lines := strings.Split(strings.TrimSuffix(code, "\n"), "\n")
				Expect(lines[len(lines)-1]).NotTo(HavePrefix(" "))
			}
		})

		It("should fail on unmatched and unclosed loops with every tier", func() {
			for _, tier := range tiers {
				_, err := compiler.Compile(mulSource+"]", config(tier, 5))
				Expect(errors.Is(err, compiler.ErrUnmatchedLoopClose)).To(BeTrue())

				_, err = compiler.Compile("["+mulSource, config(tier, 5))
				Expect(errors.Is(err, compiler.ErrUnclosedLoop)).To(BeTrue())
			}
		})
	})

	It("should behave identically for every tier on random programs", func() {
		rng := rand.New(rand.NewSource(1))
		input := []int{3, 1, 4, 1, 5}
		compared := 0

		for i := 0; i < 300; i++ {
			src := randomProgram(rng, 3)
			memory := 1 + rng.Intn(9)

			var results []*pyvm.Machine
			for _, tier := range tiers {
				code, err := compiler.Compile(src, config(tier, memory))
				Expect(err).NotTo(HaveOccurred())

				vm, err := pyvm.Exec(code, input, pyvm.WithStepLimit(20_000))
				if errors.Is(err, pyvm.ErrStepLimit) {
					break
				}
				Expect(err).NotTo(HaveOccurred(), "program %q, tier %s:\n%s", src, tier, code)
				results = append(results, vm)
			}
			if len(results) != len(tiers) {
				continue
			}

			compared++
			for _, vm := range results[1:] {
				Expect(vm.Memory).To(Equal(results[0].Memory), "program %q", src)
				Expect(vm.Pointer).To(Equal(results[0].Pointer), "program %q", src)
				Expect(vm.Output).To(Equal(results[0].Output), "program %q", src)
			}
		}

		Expect(compared).To(BeNumerically(">", 0))
	})
})

// randomProgram returns a well-formed program with loops nested at most
// depth deep.
func randomProgram(rng *rand.Rand, depth int) string {
	const ops = "+++---<<<>>>,.  "
	var sb strings.Builder
	n := rng.Intn(24)
	for i := 0; i < n; i++ {
		if depth > 0 && rng.Intn(10) == 0 {
			sb.WriteByte('[')
			sb.WriteString(randomProgram(rng, depth-1))
			sb.WriteString("-]")
			continue
		}
		sb.WriteByte(ops[rng.Intn(len(ops))])
	}
	return sb.String()
}
