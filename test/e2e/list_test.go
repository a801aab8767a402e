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
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("List Command E2E", func() {
	It("Should list accelerator devices with their names", func() {
		root := writeSysRoot(
			fakeDevice{bdf: "0000:c1:00.1", deviceID: "0x1502"},
			fakeDevice{bdf: "0000:c2:00.1", deviceID: "0x17f0"},
		)

		out, err := runCLI("list", "--sys-root", root)
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(Equal("BDF           DEVICE  NAME\n" +
			"0000:c1:00.1  0x1502  NPU Phoenix\n" +
			"0000:c2:00.1  0x17f0  NPU Strix\n"))
	})

	It("Should emit the device inventory as JSON", func() {
		root := writeSysRoot(fakeDevice{bdf: "0000:c1:00.1", deviceID: "0x1502"})

		out, err := runCLI("list", "--sys-root", root, "--json")
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(Equal(`{
  "devices": [
    {
      "bdf": "0000:c1:00.1",
      "device": "0x1502",
      "name": "NPU Phoenix"
    }
  ]
}
`))
	})

	It("Should report when no devices are present", func() {
		root := GinkgoT().TempDir()

		out, err := runCLI("list", "--sys-root", root)
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(Equal("No accelerator devices found\n"))
	})

	It("Should fall back to the raw device id for unknown hardware", func() {
		root := writeSysRoot(fakeDevice{bdf: "0000:c1:00.1", deviceID: "0xbeef"})

		out, err := runCLI("list", "--sys-root", root)
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(ContainSubstring("0xbeef"))
	})

	It("Should support the ls alias", func() {
		root := writeSysRoot(fakeDevice{bdf: "0000:c1:00.1", deviceID: "0x1502"})

		direct, err := runCLI("list", "--sys-root", root)
		Expect(err).NotTo(HaveOccurred())

		aliased, err := runCLI("ls", "--sys-root", root)
		Expect(err).NotTo(HaveOccurred())
		Expect(aliased).To(Equal(direct))
	})
})
