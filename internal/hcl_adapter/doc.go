// Package hcl_adapter implements config.Loader for HCL catalog files.
//
// A catalog file may contain any number of `dish` blocks and at most one
// `scoring` block:
//
//	dish "basque-cheesecake" {
//	  title = "Basque Burnt Cheesecake"
//
//	  ingredient "eggs" {
//	    quantity = "5"
//	    aliases  = ["egg", "large eggs"]
//	  }
//
//	  state "bake" {
//	    technique   = "baking"
//	    after       = ["mix"]
//	    temperature = { min = 200, max = 230, unit = "C" }
//	    duration    = { min = 35, max = 60, unit = "min" }
//	  }
//	}
//
//	scoring {
//	  weights = { missing_step = 20, wrong_order = 25 }
//	}
package hcl_adapter
