package pyvm_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"gobpc/pkg/pyvm"
)

const preamble = "# -*- coding: UTF-8 -*-\nimport sys\nm = [0] * 5\np = 0\n"

var _ = Describe("Machine", func() {
	It("should run arithmetic and pointer statements", func() {
		vm, err := pyvm.Exec(preamble+
			"m[p] += 3\n"+
			"p = (p + 1) % 5\n"+
			"m[p] -= 2\n", nil)

		Expect(err).NotTo(HaveOccurred())
		Expect(vm.Memory).To(Equal([]int{3, -2, 0, 0, 0}))
		Expect(vm.Pointer).To(Equal(1))
	})

	It("should wrap pointer moves with floor modulo", func() {
		vm, err := pyvm.Exec(preamble+"p = (p - 7) % 5\n", nil)

		Expect(err).NotTo(HaveOccurred())
		Expect(vm.Pointer).To(Equal(3))
	})

	It("should address cells relative to the pointer", func() {
		vm, err := pyvm.Exec(preamble+
			"m[(p + 6) % 5] += 4\n"+
			"m[(p - 1) % 5] += 1\n", nil)

		Expect(err).NotTo(HaveOccurred())
		Expect(vm.Memory).To(Equal([]int{0, 4, 0, 0, 1}))
		Expect(vm.Pointer).To(Equal(0))
	})

	It("should read input and default to zero", func() {
		vm, err := pyvm.Exec(preamble+
			"m[p] = int(sys.stdin.readline().strip() or 0)\n"+
			"m[(p + 1) % 5] = int(sys.stdin.readline().strip() or 0)\n"+
			"m[(p + 2) % 5] = int(sys.stdin.readline().strip() or 0)\n", []int{7, 9})

		Expect(err).NotTo(HaveOccurred())
		Expect(vm.Memory[:3]).To(Equal([]int{7, 9, 0}))
	})

	It("should print cells one per line", func() {
		vm, err := pyvm.Exec(preamble+
			"m[p] += 4\n"+
			"print(m[p])\n"+
			"print(m[(p + 1) % 5])\n", nil)

		Expect(err).NotTo(HaveOccurred())
		Expect(vm.Output).To(Equal([]int{4, 0}))
		Expect(vm.Stdout()).To(Equal("4\n0\n"))
	})

	It("should run nested while loops", func() {
		code := preamble +
			"m[p] += 3\n" +
			"while m[p] != 0:\n" +
			"    m[p] -= 1\n" +
			"    p = (p + 1) % 5\n" +
			"    m[p] += 2\n" +
			"    while m[p] != 0:\n" +
			"        m[p] -= 1\n" +
			"        m[(p + 1) % 5] += 1\n" +
			"    p = (p - 1) % 5\n" +
			"print(m[(p + 2) % 5])\n"

		vm, err := pyvm.Exec(code, nil)

		Expect(err).NotTo(HaveOccurred())
		Expect(vm.Output).To(Equal([]int{6}))
		Expect(vm.Pointer).To(Equal(0))
	})

	It("should accept tab indentation", func() {
		vm, err := pyvm.Exec(preamble+
			"m[p] += 2\n"+
			"while m[p] != 0:\n"+
			"\tm[p] -= 1\n", nil)

		Expect(err).NotTo(HaveOccurred())
		Expect(vm.Memory[0]).To(Equal(0))
	})

	It("should run a loop whose body is pass", func() {
		vm, err := pyvm.Exec(preamble+
			"while m[p] != 0:\n"+
			"    pass\n"+
			"m[p] += 1\n", nil)

		Expect(err).NotTo(HaveOccurred())
		Expect(vm.Memory[0]).To(Equal(1))
	})

	It("should skip comments and blank lines", func() {
		vm, err := pyvm.Exec(preamble+"\n# add one\nm[p] += 1\n", nil)

		Expect(err).NotTo(HaveOccurred())
		Expect(vm.Memory[0]).To(Equal(1))
	})

	It("should run the memory dump epilogue", func() {
		code := preamble +
			"m[p] += 1\n" +
			"m[(p + 4) % 5] += 12\n" +
			"p = (p + 2) % 5\n" +
			"print('\\n~~~ Program Terminated ~~~')\n" +
			"print('Pointer:', p)\n" +
			"print('Memory:')\n" +
			"m += [0] * 11\n" +
			"dump = ('{:4d}' * 16).format\n" +
			"for i in range(0, 5, 16):\n" +
			"    print('{:7d} | {}'.format(i, dump(*m[i:i + 16])))\n"

		vm, err := pyvm.Exec(code, nil)

		Expect(err).NotTo(HaveOccurred())
		Expect(vm.Stdout()).To(Equal("\n~~~ Program Terminated ~~~\n" +
			"Pointer: 2\n" +
			"Memory:\n" +
			"      0 |    1   0   0   0  12   0   0   0   0   0   0   0   0   0   0   0\n"))
	})

	It("should stop at the step limit", func() {
		_, err := pyvm.Exec(preamble+
			"m[p] += 1\n"+
			"while m[p] != 0:\n"+
			"    m[p] += 1\n", nil, pyvm.WithStepLimit(100))

		Expect(err).To(MatchError(pyvm.ErrStepLimit))
	})

	It("should raise an index error outside memory", func() {
		_, err := pyvm.Exec(preamble+"p = (p + 9) % 10\nm[p] += 1\n", nil)

		Expect(err).To(MatchError(ContainSubstring("list index out of range")))
	})

	Context("when loading", func() {
		It("should reject unknown statements", func() {
			_, err := pyvm.Load(preamble + "x = 1\n")

			Expect(err).To(MatchError(ContainSubstring("line 5: unsupported statement")))
		})

		It("should reject a loop without a body", func() {
			_, err := pyvm.Load(preamble + "while m[p] != 0:\nprint(m[p])\n")

			Expect(err).To(MatchError(ContainSubstring("expected an indented block")))
		})

		It("should reject stray indentation", func() {
			_, err := pyvm.Load(preamble + "    m[p] += 1\n")

			Expect(err).To(MatchError(ContainSubstring("unexpected indentation")))
		})
	})
})
