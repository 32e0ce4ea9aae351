// Package gadget emits keystrokes through a Linux USB gadget HID
// keyboard function (/dev/hidgN).
//
// The host sees a standard boot keyboard: each keystroke is an
// 8-byte report (modifier mask, reserved byte, six usage slots)
// followed by an empty release report. The USB identity the host
// sees — vendor, product, strings — is set up by the gadget configfs
// configuration outside this process.
package gadget
