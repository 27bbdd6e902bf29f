package permissionlist_test

import (
	"fmt"

	"github.com/go-drift/drift/pkg/core"

	"github.com/go-drift/permissions/pkg/permission"
	"github.com/go-drift/permissions/pkg/permissionlist"
)

// This example shows how to ask for the microphone and notifications from a
// button handler. The list closes on its own once both are granted.
func ExamplePresent() {
	var ctx core.BuildContext // from the enclosing widget's Build

	ds, err := permission.DefaultBindings().Descriptors(permission.Microphone, permission.Notifications)
	if err != nil {
		fmt.Println(err)
		return
	}
	c, err := permissionlist.New(ds,
		permissionlist.WithDelegate(permissionlist.DelegateFuncs{
			Allowed: func(k permission.Kind) { fmt.Println("allowed", k) },
			Denied:  func(k permission.Kind) { fmt.Println("denied", k) },
		}),
		permissionlist.WithSettingsHandler(func(k permission.Kind) {
			fmt.Println("enable", k, "in Settings")
		}),
	)
	if err != nil {
		fmt.Println(err)
		return
	}
	permissionlist.Present(ctx, c)
}
