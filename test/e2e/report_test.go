/*
Copyright 2026 Ardika Saputro.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package e2e

import (
	"errors"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ardikabs/accelctl/internal/reports"
)

var _ = Describe("Report Command E2E", func() {
	It("Should render the clocks report as aligned text", func() {
		By("materializing a device with one clock")
		root := writeSysRoot(fakeDevice{
			bdf:    "0000:c1:00.1",
			clocks: map[string]string{"DATA_CLK": "500"},
		})

		By("producing the clocks report")
		out, err := runCLI("report", "clocks", "--sys-root", root)
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(Equal("Clocks\n" +
			"  DATA_CLK               : 500 MHz\n" +
			"\n"))
	})

	It("Should render the clocks report as JSON with --json", func() {
		root := writeSysRoot(fakeDevice{
			bdf:    "0000:c1:00.1",
			clocks: map[string]string{"DATA_CLK": "500"},
		})

		out, err := runCLI("report", "clocks", "--sys-root", root, "--json")
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(Equal(`{
  "clocks": [
    {
      "id": "DATA_CLK",
      "freq_mhz": "500"
    }
  ]
}
`))
	})

	It("Should print the empty notice when no hardware contexts are running", func() {
		root := writeSysRoot(fakeDevice{bdf: "0000:c1:00.1"})

		out, err := runCLI("report", "preemption", "--sys-root", root)
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(Equal("Premption Telemetry Data\n" +
			" No hardware contexts running on device\n" +
			"\n"))
	})

	It("Should print the empty notice even in JSON mode", func() {
		root := writeSysRoot(fakeDevice{bdf: "0000:c1:00.1"})

		out, err := runCLI("report", "preemption", "--sys-root", root, "--json")
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(Equal("Premption Telemetry Data\n" +
			" No hardware contexts running on device\n" +
			"\n"))
	})

	It("Should render the preemption report as a table", func() {
		root := writeSysRoot(fakeDevice{
			bdf: "0000:c1:00.1",
			contexts: map[string]map[string]string{
				"ctx0": {
					"user_task":                        "inference_srv",
					"slot_index":                       "0",
					"preemption_flag_set":              "2",
					"preemption_flag_unset":            "2",
					"preemption_checkpoint_event":      "14",
					"preemption_frame_boundary_events": "3",
				},
			},
		})

		out, err := runCLI("report", "preemption", "--sys-root", root)
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(Equal("Premption Telemetry Data\n" +
			"  User Task      Ctx ID  Set Hints  Unset Hints  Checkpoint Events  Frame Boundary Events\n" +
			"  inference_srv  0       2          2            14                 3\n" +
			"\n"))
	})

	It("Should match report names case-insensitively", func() {
		root := writeSysRoot(fakeDevice{
			bdf:    "0000:c1:00.1",
			clocks: map[string]string{"DATA_CLK": "500"},
		})

		lower, err := runCLI("report", "clocks", "--sys-root", root)
		Expect(err).NotTo(HaveOccurred())

		upper, err := runCLI("report", "CLOCKS", "--sys-root", root)
		Expect(err).NotTo(HaveOccurred())
		Expect(upper).To(Equal(lower))
	})

	It("Should name the available reports when no report is given", func() {
		root := writeSysRoot(fakeDevice{bdf: "0000:c1:00.1"})

		out, err := runCLI("report", "--sys-root", root)
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("one of: clocks, preemption"))
		Expect(out).To(BeEmpty())
	})

	It("Should fail for an unknown report name without producing output", func() {
		root := writeSysRoot(fakeDevice{bdf: "0000:c1:00.1"})

		out, err := runCLI("report", "bogus", "--sys-root", root)
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(Equal("invalid report value: 'bogus'"))

		var unknownErr *reports.UnknownReportError
		Expect(errors.As(err, &unknownErr)).To(BeTrue())
		Expect(unknownErr.Name).To(Equal("bogus"))
		Expect(out).To(BeEmpty())
	})

	It("Should select a device by BDF suffix with --device", func() {
		root := writeSysRoot(
			fakeDevice{bdf: "0000:c1:00.1", clocks: map[string]string{"DATA_CLK": "500"}},
			fakeDevice{bdf: "0000:c2:00.1", clocks: map[string]string{"DATA_CLK": "800"}},
		)

		out, err := runCLI("report", "clocks", "--sys-root", root, "--device", "c2:00.1")
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(ContainSubstring("800 MHz"))
		Expect(out).NotTo(ContainSubstring("500 MHz"))
	})

	It("Should accept an upper-cased device filter", func() {
		root := writeSysRoot(fakeDevice{
			bdf:    "0000:c1:00.1",
			clocks: map[string]string{"DATA_CLK": "500"},
		})

		_, err := runCLI("report", "clocks", "--sys-root", root, "-d", "0000:C1:00.1")
		Expect(err).NotTo(HaveOccurred())
	})

	It("Should fail when multiple devices exist and none is specified", func() {
		root := writeSysRoot(
			fakeDevice{bdf: "0000:c1:00.1"},
			fakeDevice{bdf: "0000:c2:00.1"},
		)

		out, err := runCLI("report", "clocks", "--sys-root", root)
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("multiple devices found"))
		Expect(out).To(BeEmpty())
	})

	It("Should fail when a clock attribute is unreadable", func() {
		root := writeSysRoot(fakeDevice{bdf: "0000:c1:00.1"})
		By("creating a clock directory without its frequency attribute")
		Expect(os.MkdirAll(filepath.Join(root, "0000:c1:00.1", "clocks", "DATA_CLK"), 0o755)).To(Succeed())

		out, err := runCLI("report", "clocks", "--sys-root", root)
		Expect(err).To(HaveOccurred())

		var srcErr *reports.DataSourceError
		Expect(errors.As(err, &srcErr)).To(BeTrue())
		Expect(srcErr.Report).To(Equal("clocks"))
		Expect(out).To(BeEmpty())
	})
})
