package main

import (
	"bytes"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("invocation", func() {
	var (
		stdout, stderr *bytes.Buffer
		env            map[string]string
	)

	BeforeEach(func() {
		stdout = &bytes.Buffer{}
		stderr = &bytes.Buffer{}
		env = map[string]string{}
	})

	run := func(stdin string, args ...string) int {
		inv := &invocation{
			Program: "ipp-parse",
			Args:    args,
			Stdin:   strings.NewReader(stdin),
			Stdout:  stdout,
			Stderr:  stderr,
			Getenv:  func(key string) string { return env[key] },
		}
		return inv.run()
	}

	Context("arguments", func() {
		It("prints usage for --help", func() {
			Expect(run("", "--help")).To(Equal(0))
			Expect(stdout.String()).To(ContainSubstring("Usage: ipp-parse [--help]"))
			Expect(stdout.String()).To(ContainSubstring("IPPcode24"))
		})

		It("accepts the single-dash spelling of help", func() {
			Expect(run("", "-help")).To(Equal(0))
			Expect(stdout.Len()).To(BeNumerically(">", 0))
		})

		DescribeTable("rejects bad invocations with exit 10",
			func(args ...string) {
				Expect(run(".IPPcode24\n", args...)).To(Equal(10))
				Expect(stdout.Len()).To(BeZero())
				Expect(stderr.String()).To(ContainSubstring("kind=ArgError"))
			},
			Entry("unknown flag", "--invalid_arg"),
			Entry("repeated help", "--help", "--help"),
			Entry("help with another flag", "--help", "--source=x"),
			Entry("positional argument", "file.src"),
			Entry("short help", "-h"),
			Entry("bare double dash", "--"),
			Entry("help set to false", "--help=false"),
			Entry("help set to true", "--help=true"),
			Entry("empty argument", ""),
		)

		DescribeTable("rejects an invalid environment with exit 10",
			func(key, value string) {
				env[key] = value
				Expect(run(".IPPcode24\nDEFVAR GF@a\n")).To(Equal(10))
				Expect(stdout.Len()).To(BeZero())
			},
			Entry("log level", envLogLevel, "loud"),
			Entry("markup indent", envIndent, "<x"),
			Entry("non-blank indent", envIndent, "ab"),
		)
	})

	Context("translation", func() {
		It("writes the document for a valid program", func() {
			Expect(run(".IPPcode24\nDEFVAR GF@a\n")).To(Equal(0))

			got, err := parseXMLTree(stdout.Bytes())
			Expect(err).NotTo(HaveOccurred())
			Expect(got.Name).To(Equal("program"))
			Expect(got.Attrs).To(HaveKeyWithValue("language", "IPPcode24"))
			Expect(got.Children).To(HaveLen(1))

			inst := got.Children[0]
			Expect(inst.Attrs).To(Equal(map[string]string{"order": "1", "opcode": "DEFVAR"}))
			Expect(inst.Children).To(HaveLen(1))
			Expect(inst.Children[0].Name).To(Equal("arg1"))
			Expect(inst.Children[0].Attrs).To(HaveKeyWithValue("type", "var"))
			Expect(inst.Children[0].Text).To(Equal("GF@a"))
			Expect(stderr.String()).To(BeEmpty())
		})

		It("writes an empty program for a header-only input", func() {
			Expect(run(".IPPcode24\n")).To(Equal(0))
			got, err := parseXMLTree(stdout.Bytes())
			Expect(err).NotTo(HaveOccurred())
			Expect(got.Children).To(BeEmpty())
		})

		DescribeTable("maps failures to exit codes without output",
			func(src string, code int) {
				Expect(run(src)).To(Equal(code))
				Expect(stdout.Len()).To(BeZero())
				Expect(stderr.String()).To(ContainSubstring("translation failed"))
			},
			Entry("empty input", "", 21),
			Entry("invalid header", ".IPPcode2\n", 21),
			Entry("unknown opcode", ".IPPcode24\nFOOBAR GF@a\n", 22),
			Entry("non-numeric int", ".IPPcode24\nWRITE int@henlo\n", 23),
			Entry("invalid encoding", ".IPPcode24\nWRITE string@\xc3\x28\n", 23),
		)

		It("logs the failing line and lexeme", func() {
			Expect(run(".IPPcode24\n\nWRITE bool@1\n")).To(Equal(23))
			Expect(stderr.String()).To(ContainSubstring("line=3"))
			Expect(stderr.String()).To(ContainSubstring("lexeme=bool@1"))
			Expect(stderr.String()).To(ContainSubstring("exit=23"))
		})

		It("honours the environment configuration", func() {
			env[envUnaryNot] = "true"
			env[envIndent] = "0"
			env[envVerify] = "true"
			Expect(run(".IPPcode24\nNOT GF@a bool@true\n")).To(Equal(0))
			Expect(stdout.String()).To(ContainSubstring(`<program language="IPPcode24"><instruction order="1" opcode="NOT">`))
		})

		It("logs progress at debug level", func() {
			env[envLogLevel] = "debug"
			Expect(run(".IPPcode24\nBREAK\n")).To(Equal(0))
			Expect(stderr.String()).To(ContainSubstring("opcode=BREAK"))
			Expect(stderr.String()).To(ContainSubstring("msg=translated"))
		})
	})
})
