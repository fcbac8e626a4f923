// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package name reads JMnedict, the Japanese proper name dictionary, and
// converts its entries into [Name] records.
//
// The source grammar is:
//
//	JMnedict:  entry*
//	entry:     ent_seq, k_ele*, r_ele+, trans+
//	k_ele:     keb, ke_inf*, ke_pri*
//	r_ele:     reb, re_restr*, re_inf*, re_pri*
//	trans:     name_type*, xref*, trans_det*
//
// Names have no common flag so outputs cannot be limited to common names.
package name
