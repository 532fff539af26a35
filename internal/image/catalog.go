// Package image resolves a node's machine image from the desired image
// name and the cluster's region.
package image

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound indicates the catalog has no image for the requested
// name/region pair. This is a configuration defect: the catalog has not
// been updated for a new region.
var ErrNotFound = errors.New("image not found")

// Image names published in the provider catalog.
const (
	NameGPU      = "Oracle-Linux-7.9-Gen2-GPU-2020.11.10-0"
	NameStandard = "Oracle-Linux-7.9-2020.11.10-1"
)

// ForShape selects the image name appropriate for a machine shape.
// GPU shapes need the GPU build with the driver stack baked in.
func ForShape(shape string) string {
	if strings.Contains(shape, "GPU") {
		return NameGPU
	}
	return NameStandard
}

// Catalog maps an image name and region to a concrete image identifier.
type Catalog interface {
	Resolve(name, region string) (string, error)
}

type staticCatalog map[string]map[string]string

// DefaultCatalog returns the built-in catalog of provider images, from
// https://docs.cloud.oracle.com/iaas/images/
func DefaultCatalog() Catalog {
	return staticCatalog(images)
}

func (c staticCatalog) Resolve(name, region string) (string, error) {
	regions, ok := c[name]
	if !ok {
		return "", fmt.Errorf("image %q: %w", name, ErrNotFound)
	}
	id, ok := regions[region]
	if !ok {
		return "", fmt.Errorf("image %q in region %q: %w", name, region, ErrNotFound)
	}
	return id, nil
}

var images = map[string]map[string]string{
	NameGPU: {
		"ap-chuncheon-1":   "ocid1.image.oc1.ap-chuncheon-1.aaaaaaaabwwu4uhkvnwfs6ast6nc3sn43rbhig6cwmnoexvilurlsuv4c4nq",
		"ap-hyderabad-1":   "ocid1.image.oc1.ap-hyderabad-1.aaaaaaaahliockmravup36jjflyecwketojfmdtkhxaax65urkplif4fboka",
		"ap-melbourne-1":   "ocid1.image.oc1.ap-melbourne-1.aaaaaaaa3jd7bfucshqf4yahkndxtt6psmu4e7gnpfwcou2iaywa563ot72a",
		"ap-mumbai-1":      "ocid1.image.oc1.ap-mumbai-1.aaaaaaaaxan4wocugyzcht3toh6mhcakltmxsyem4ipt2zsrirgfntczxqja",
		"ap-osaka-1":       "ocid1.image.oc1.ap-osaka-1.aaaaaaaa7ovj6wqi5ntzas6qmmcitod6mejg4unuyt4ngo7xm3akhxlpbesq",
		"ap-seoul-1":       "ocid1.image.oc1.ap-seoul-1.aaaaaaaaxrupkrmtokkw4nwtd3sumi475wpi347q55wkyeynbyekzgtt3hja",
		"ap-sydney-1":      "ocid1.image.oc1.ap-sydney-1.aaaaaaaarfxet27epkknrxcwnenol4xxxekwhjxkawsrjdrpywd3u4jtnf4a",
		"ap-tokyo-1":       "ocid1.image.oc1.ap-tokyo-1.aaaaaaaaq7ypxho64hcariezzyfefgsoo6y6zh4waqv37pbpgwul6uuut7oa",
		"ca-montreal-1":    "ocid1.image.oc1.ca-montreal-1.aaaaaaaahg2nhp6kh6fjj64w62qjd5uih6t6j4x2q6vg3xhouvmwmxfzjv7q",
		"ca-toronto-1":     "ocid1.image.oc1.ca-toronto-1.aaaaaaaatodropartay2sqjjvbsx63dsywf4ixwvvvot7lodqbuqdjeuodja",
		"eu-amsterdam-1":   "ocid1.image.oc1.eu-amsterdam-1.aaaaaaaaizqldhgelvi7wjmcbygjdw7kf7ohx4cslqmzzcxleunyftuiovta",
		"eu-frankfurt-1":   "ocid1.image.oc1.eu-frankfurt-1.aaaaaaaagavzvhaa5ngdicwqm3bttqekc7vxb5qpvk6erf6enyayoiftjyba",
		"eu-zurich-1":      "ocid1.image.oc1.eu-zurich-1.aaaaaaaas3ffbxgtq56o4puzq3z7lywif4f23vywyxqqgbr72rsfi2h4vasq",
		"me-dubai-1":       "ocid1.image.oc1.me-dubai-1.aaaaaaaaulss5li5g7nwb4uc67op4scsikv3xevsodirexumxs2fgxp7ahba",
		"me-jeddah-1":      "ocid1.image.oc1.me-jeddah-1.aaaaaaaa4ra3jts6cab2b3kdvo5cm6ya3o7qhrxaryupt5qduhmtyzxxn43q",
		"sa-santiago-1":    "ocid1.image.oc1.sa-santiago-1.aaaaaaaayczdfud4bdncfbnq7agblbshdcswkxsd7qcab3qy3nbjl7ev7edq",
		"sa-saopaulo-1":    "ocid1.image.oc1.sa-saopaulo-1.aaaaaaaamtlth7qztj6ds2vdg5k46itiirzxrjwwzzbn6ga7k4u6itt633dq",
		"uk-cardiff-1":     "ocid1.image.oc1.uk-cardiff-1.aaaaaaaa6kaseg5sxhxlxsyt7tugdlwztaflpzrch457wlova6qjx6amtrjq",
		"uk-london-1":      "ocid1.image.oc1.uk-london-1.aaaaaaaavz4whs6i3uhckwtgxjcwkyyobfrfmptxl25zw2ibikqjpidrwqva",
		"us-ashburn-1":     "ocid1.image.oc1.iad.aaaaaaaag3s2smtrzrkdvrtengr2lakb6qavcvtdcfiwicmcsxcp7twiarfq",
		"us-gov-ashburn-1": "ocid1.image.oc3.us-gov-ashburn-1.aaaaaaaatq2lmuf6j2vihcnzrz6aeltd2pisbznfymcl26vsk6lq2tb4kcaq",
		"us-gov-chicago-1": "ocid1.image.oc3.us-gov-chicago-1.aaaaaaaa4amayntmaop6abh66vckfks34how7tlqgoyxjqzbfc4tw6g4237q",
		"us-gov-phoenix-1": "ocid1.image.oc3.us-gov-phoenix-1.aaaaaaaaeys5ty7jvp5yg445erv2n5t6szrwbizlnhkfkqb7hs6jqf5wtunq",
		"us-langley-1":     "ocid1.image.oc2.us-langley-1.aaaaaaaaehcope5qujxe4feoix56asymjym3yxukqvgt7ogv4wv5ujqjtncq",
		"us-luke-1":        "ocid1.image.oc2.us-luke-1.aaaaaaaaqxluhhoxoxpmapqhpr6fcc5vvr4vzbjoudfftbqunjqafqqt27ra",
		"us-phoenix-1":     "ocid1.image.oc1.phx.aaaaaaaaz3d4hrs4jxxj5ue3fvg3pwr4zseixqhvvielziklfzjruxn55kpq",
		"us-sanjose-1":     "ocid1.image.oc1.us-sanjose-1.aaaaaaaajshjnsvrpitury7qu4nsibevoyos2r5s3ztbulzqou3fdh65aifa",
	},
	NameStandard: {
		"ap-chuncheon-1":   "ocid1.image.oc1.ap-chuncheon-1.aaaaaaaaelfp7gtaodq3w6sq3s3dqwtgr7b2ofo6z5tkh6nsp6622xopmeja",
		"ap-hyderabad-1":   "ocid1.image.oc1.ap-hyderabad-1.aaaaaaaav7gmok247t2jngmtyahgcktphcj5gin7bpyc2fjg3bzho47ws7ea",
		"ap-melbourne-1":   "ocid1.image.oc1.ap-melbourne-1.aaaaaaaausio3ssmcxawnqwzyolpbvakwt7jsdps7o4edzxhs4gol5kd2d4a",
		"ap-mumbai-1":      "ocid1.image.oc1.ap-mumbai-1.aaaaaaaazw753qijtnuynq6wrd3rmiayquc3kpijc7j5akprmvyzhcdhxsxq",
		"ap-osaka-1":       "ocid1.image.oc1.ap-osaka-1.aaaaaaaahfv5tiogcrhesqedn7bfp2bm65eszn47bv6fgsepenscf2bz4bga",
		"ap-seoul-1":       "ocid1.image.oc1.ap-seoul-1.aaaaaaaa5df7nz7fgtiqfbnx2fyefgsqvr5z7me4g2snwwmhgiwxgs5iozsq",
		"ap-sydney-1":      "ocid1.image.oc1.ap-sydney-1.aaaaaaaa47h6zbuz3glgprnlftbzaq47b2egblcqzllshzjvotfgj7oyfnya",
		"ap-tokyo-1":       "ocid1.image.oc1.ap-tokyo-1.aaaaaaaazgoy6klsxzbi5jh5kx2qwxw6l6mqtlbo4c4kak4zes7zwytd4z2q",
		"ca-montreal-1":    "ocid1.image.oc1.ca-montreal-1.aaaaaaaaom7gj5nbeedakcg5ivoli2t6634o3ymyyf3sdikatskfwt4bfzja",
		"ca-toronto-1":     "ocid1.image.oc1.ca-toronto-1.aaaaaaaadsv6are52igmc63fe7xkdtj22uqqzibkps6ukhupac6dwuiqby4a",
		"eu-amsterdam-1":   "ocid1.image.oc1.eu-amsterdam-1.aaaaaaaahxjr3fbnv62kt5pvsblj5u7t3tfoa5bga4rv6nbapafen4ft4bua",
		"eu-frankfurt-1":   "ocid1.image.oc1.eu-frankfurt-1.aaaaaaaaf6gm7xvn7rhll36kwlotl4chm25ykgsje7zt2b4w6gae4yqfdfwa",
		"eu-zurich-1":      "ocid1.image.oc1.eu-zurich-1.aaaaaaaaddo5ksklg5ctvwhkncxv675ah3a5n7r7hti234ty46jt7o4i5owq",
		"me-dubai-1":       "ocid1.image.oc1.me-dubai-1.aaaaaaaapjwkms5kb637ddq7ew5tjflxtgyyxted2zvzn7klnid77mjtiowa",
		"me-jeddah-1":      "ocid1.image.oc1.me-jeddah-1.aaaaaaaamaasqxfymhi3ppcqn4onqjiu7wpz4gjbeem4ww3mtfq3zflruzya",
		"sa-saopaulo-1":    "ocid1.image.oc1.sa-saopaulo-1.aaaaaaaa7inha53kcyutiqdbz3w4gvms2ab5z3bc624loheugh7fbvg4wada",
		"uk-cardiff-1":     "ocid1.image.oc1.uk-cardiff-1.aaaaaaaakiyy4e47557phn4cymjgmaauodty7imys47vrzvdzyhci4stgm7q",
		"uk-london-1":      "ocid1.image.oc1.uk-london-1.aaaaaaaai2rckqhxpvhjb6vtxdgzga3nomcqb3rl54o7wdotnof2qm2ek55a",
		"us-ashburn-1":     "ocid1.image.oc1.iad.aaaaaaaaf2wxqc6ee5axabpbandk6ji27oyxyicatqw5iwkrk76kecqrrdyq",
		"us-gov-ashburn-1": "ocid1.image.oc3.us-gov-ashburn-1.aaaaaaaadqzao57flqwkih4uoocghkgwp7qelrgj5vyih4ptuuah3alkgsta",
		"us-gov-chicago-1": "ocid1.image.oc3.us-gov-chicago-1.aaaaaaaanploag6l4h653ct2r4xvqn2xwfntsjuzhmypbqpqqfuyf43qo2va",
		"us-gov-phoenix-1": "ocid1.image.oc3.us-gov-phoenix-1.aaaaaaaablheqkh4k2mo4l5wfnpg2t5zuokmgai5cex6kell4epiio5yi6lq",
		"us-langley-1":     "ocid1.image.oc2.us-langley-1.aaaaaaaan444pc2rvauh4xsi47g3bffub5ow4o7uz72yxc7sb5dbobrg4yia",
		"us-luke-1":        "ocid1.image.oc2.us-luke-1.aaaaaaaa7sffhf7uouur6t6amby4nuntt3r76f3z4i4jg3z6dm7m5oe4n4xq",
		"us-phoenix-1":     "ocid1.image.oc1.phx.aaaaaaaaxdnx3den32vwplngpeu44zakw7lxup7vcdd3jmke4pfleaug3m6q",
		"us-sanjose-1":     "ocid1.image.oc1.us-sanjose-1.aaaaaaaaunhdpihc57bc6dzipgwvhr2ouoxw65tgabx6pwgmk5qqpjtzm5oq",
	},
}
