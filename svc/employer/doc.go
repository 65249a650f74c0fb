// Package employer serves the signed in employer's company profile at
// /employer/profile. Only users with the employer role may reach it.
package employer
